package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Error kinds surfaced by store and ledger operations. All of them are
// handled at the operation boundary; none are fatal to the process.
var (
	ErrFileUnavailable   = errors.New("file unavailable")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoProducts        = errors.New("no products in database")
)

// Store owns the in-memory product and sales collections and keeps them
// aligned with their backing files. The product file is rewritten
// wholesale on every product mutation; the sales file is append-only.
//
// A Store is not safe for concurrent use. The program is single-user
// and single-threaded by design.
type Store struct {
	products []Product
	sales    []SaleRecord

	productsPath string
	salesPath    string
	maxProducts  int // 0 means unbounded
	maxSales     int // 0 means unbounded

	// dirty is set when a persistence write fails after the in-memory
	// state already changed. Memory and disk may diverge until the next
	// successful save.
	dirty bool
}

// Open creates a Store from the configured paths and loads both files.
// A missing file is treated as a fresh start; any other open failure or
// a malformed line fails the load.
func Open(cfg *Config) (*Store, error) {
	s := &Store{
		productsPath: cfg.ProductsFile,
		salesPath:    cfg.SalesFile,
		maxProducts:  cfg.MaxProducts,
		maxSales:     cfg.MaxSales,
	}

	if err := s.loadProducts(); err != nil {
		return nil, err
	}
	if err := s.loadSales(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"products": len(s.products),
		"sales":    len(s.sales),
	}).Debug("store loaded")

	return s, nil
}

// Products returns the live product collection in insertion order.
func (s *Store) Products() []Product {
	return s.products
}

// Sales returns the live sales collection in insertion order.
func (s *Store) Sales() []SaleRecord {
	return s.sales
}

// Dirty reports whether a failed write left the in-memory state ahead
// of the files at some point in this session. It stays set until the
// process exits so the operator knows disk state may be stale.
func (s *Store) Dirty() bool {
	return s.dirty
}

func (s *Store) loadProducts() error {
	s.products = nil
	return s.loadFile(s.productsPath, func(line string, n int) error {
		if s.maxProducts > 0 && len(s.products) >= s.maxProducts {
			logrus.WithField("file", s.productsPath).Warn("product capacity reached, remaining lines ignored")
			return errStopLoad
		}
		p, err := DecodeProduct(line)
		if err != nil {
			return &MalformedRecordError{Line: n, Err: err}
		}
		s.products = append(s.products, p)
		return nil
	})
}

func (s *Store) loadSales() error {
	s.sales = nil
	return s.loadFile(s.salesPath, func(line string, n int) error {
		if s.maxSales > 0 && len(s.sales) >= s.maxSales {
			logrus.WithField("file", s.salesPath).Warn("sales capacity reached, remaining lines ignored")
			return errStopLoad
		}
		rec, err := DecodeSale(line)
		if err != nil {
			return &MalformedRecordError{Line: n, Err: err}
		}
		s.sales = append(s.sales, rec)
		return nil
	})
}

// errStopLoad stops the line loop without failing the load.
var errStopLoad = errors.New("stop load")

// loadFile feeds every non-blank line of the file to fn together with
// its 1-based line number. A missing file is a fresh start.
func (s *Store) loadFile(path string, fn func(line string, n int) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("file", path).Debug("file missing, starting empty")
			return nil
		}
		return fmt.Errorf("%w: opening %s: %v", ErrFileUnavailable, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line, lineNo); err != nil {
			if errors.Is(err, errStopLoad) {
				return nil
			}
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// SaveProducts truncates and rewrites the entire product file from the
// in-memory collection, one line per product, in collection order. This
// is the only persistence path for product mutations. On failure the
// in-memory state is kept and the store is marked dirty.
func (s *Store) SaveProducts() error {
	f, err := os.Create(s.productsPath)
	if err != nil {
		s.dirty = true
		return fmt.Errorf("%w: writing %s: %v", ErrFileUnavailable, s.productsPath, err)
	}

	w := bufio.NewWriter(f)
	for _, p := range s.products {
		fmt.Fprintln(w, EncodeProduct(p))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		s.dirty = true
		return fmt.Errorf("writing %s: %w", s.productsPath, err)
	}
	if err := f.Close(); err != nil {
		s.dirty = true
		return fmt.Errorf("closing %s: %w", s.productsPath, err)
	}

	logrus.WithField("count", len(s.products)).Debug("product file rewritten")
	return nil
}

// RecordSale appends the sale to the in-memory collection and to the
// sales file. Prior file lines are never rewritten.
func (s *Store) RecordSale(rec SaleRecord) error {
	if s.maxSales > 0 && len(s.sales) >= s.maxSales {
		return fmt.Errorf("%w: sales collection full (%d)", ErrCapacityExceeded, s.maxSales)
	}

	s.sales = append(s.sales, rec)

	f, err := os.OpenFile(s.salesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.dirty = true
		return fmt.Errorf("%w: appending to %s: %v", ErrFileUnavailable, s.salesPath, err)
	}
	_, werr := fmt.Fprintln(f, EncodeSale(rec))
	cerr := f.Close()
	if werr != nil {
		s.dirty = true
		return fmt.Errorf("appending to %s: %w", s.salesPath, werr)
	}
	if cerr != nil {
		s.dirty = true
		return fmt.Errorf("closing %s: %w", s.salesPath, cerr)
	}

	return nil
}

// addProduct appends to the in-memory collection, enforcing capacity.
// Persistence is the caller's responsibility.
func (s *Store) addProduct(p Product) error {
	if s.maxProducts > 0 && len(s.products) >= s.maxProducts {
		return fmt.Errorf("%w: product collection full (%d)", ErrCapacityExceeded, s.maxProducts)
	}
	s.products = append(s.products, p)
	return nil
}
