package internal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// UnresolvedPolicy decides what happens to a sale whose product id does
// not resolve to any product.
type UnresolvedPolicy string

const (
	// UnresolvedSkip drops the sale from the report (legacy revenue
	// report behavior).
	UnresolvedSkip UnresolvedPolicy = "skip"
	// UnresolvedError fails the report on the first unresolvable sale.
	UnresolvedError UnresolvedPolicy = "error"
	// UnresolvedPlaceholder keeps the sale with a placeholder name and
	// zero price (legacy monthly report behavior).
	UnresolvedPlaceholder UnresolvedPolicy = "placeholder"
)

// MatchMode selects how the monthly report matches sale dates.
type MatchMode string

const (
	// MatchSubstring matches MM/YYYY as a raw substring of the date
	// text, exactly like the legacy report. It can false-positive on
	// unusual date strings.
	MatchSubstring MatchMode = "substring"
	// MatchStructured compares the month and year fields of the
	// DD/MM/YYYY layout.
	MatchStructured MatchMode = "structured"
)

// placeholderName is used for unresolvable products under
// UnresolvedPlaceholder.
const placeholderName = "Unknown"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SaleYear extracts the year from a DD/MM/YYYY date using the fixed
// character offset the file format guarantees. Returns 0 for dates too
// short to carry a year.
func SaleYear(date string) int {
	if len(date) < 10 {
		return 0
	}
	y, err := strconv.Atoi(date[6:10])
	if err != nil {
		return 0
	}
	return y
}

// RevenueReport selects the sales whose date falls in year, resolves
// each to a product (first id match) and prices it. Returns the line
// items and the revenue total.
func RevenueReport(st *Store, year int, policy UnresolvedPolicy) ([]ReportLine, float64, error) {
	var lines []ReportLine
	var total float64

	for _, sale := range st.Sales() {
		if SaleYear(sale.Date) != year {
			continue
		}
		line, ok, err := resolve(st, sale, policy)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			continue
		}
		total += line.Revenue
		lines = append(lines, line)
	}
	return lines, total, nil
}

// MonthlyReportOptions tunes monthly report generation. Zero values
// fall back to legacy-compatible behavior.
type MonthlyReportOptions struct {
	Mode       MatchMode        // default MatchSubstring
	Unresolved UnresolvedPolicy // default UnresolvedPlaceholder
	ReportID   string           // default legacy report id
	Dir        string           // default current directory
}

// MonthlyReportResult is the outcome of a generated monthly report.
type MonthlyReportResult struct {
	Lines   []ReportLine
	Matched int
	Path    string
}

// DefaultReportID is the fixed suffix the legacy report files carried.
const DefaultReportID = "2559321"

// MonthlyReport selects the sales matching monthYear ("MM/YYYY"),
// resolves product names and prices, and writes the report file named
// after the full month name. Slashes in the constructed file name are
// replaced with underscores.
func MonthlyReport(st *Store, monthYear string, opts MonthlyReportOptions) (*MonthlyReportResult, error) {
	month, err := parseMonthYear(monthYear)
	if err != nil {
		return nil, err
	}
	if opts.Mode == "" {
		opts.Mode = MatchSubstring
	}
	if opts.Unresolved == "" {
		opts.Unresolved = UnresolvedPlaceholder
	}
	if opts.ReportID == "" {
		opts.ReportID = DefaultReportID
	}

	var lines []ReportLine
	for _, sale := range st.Sales() {
		if !matchesMonth(sale.Date, monthYear, opts.Mode) {
			continue
		}
		line, ok, err := resolve(st, sale, opts.Unresolved)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	name := fmt.Sprintf("%s_Sales_Report_%s.txt", monthNames[month-1], opts.ReportID)
	name = strings.ReplaceAll(name, "/", "_")
	path := filepath.Join(opts.Dir, name)

	if err := writeMonthlyReportFile(path, monthYear, lines); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report":  path,
		"matched": len(lines),
	}).Debug("monthly report written")

	return &MonthlyReportResult{Lines: lines, Matched: len(lines), Path: path}, nil
}

func matchesMonth(date, monthYear string, mode MatchMode) bool {
	switch mode {
	case MatchStructured:
		if len(date) < 10 {
			return false
		}
		return date[3:5] == monthYear[:2] && date[6:10] == monthYear[3:]
	default:
		return strings.Contains(date, monthYear)
	}
}

// parseMonthYear validates the "MM/YYYY" argument and returns the month
// number.
func parseMonthYear(monthYear string) (int, error) {
	if len(monthYear) != 7 || monthYear[2] != '/' {
		return 0, fmt.Errorf("invalid month/year %q, want MM/YYYY", monthYear)
	}
	month, err := strconv.Atoi(monthYear[:2])
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month in %q, want MM/YYYY", monthYear)
	}
	if _, err := strconv.Atoi(monthYear[3:]); err != nil {
		return 0, fmt.Errorf("invalid year in %q, want MM/YYYY", monthYear)
	}
	return month, nil
}

// resolve enriches a sale with its product's name and price. The second
// return value is false when the sale should be dropped.
func resolve(st *Store, sale SaleRecord, policy UnresolvedPolicy) (ReportLine, bool, error) {
	for _, p := range st.Products() {
		if p.ID == sale.ProductID {
			return ReportLine{
				Sale:        sale,
				ProductName: p.Name,
				Price:       p.Price,
				Revenue:     float64(sale.Quantity) * p.Price,
			}, true, nil
		}
	}

	switch policy {
	case UnresolvedError:
		return ReportLine{}, false, fmt.Errorf("%w: sale references id %d", ErrNotFound, sale.ProductID)
	case UnresolvedPlaceholder:
		return ReportLine{Sale: sale, ProductName: placeholderName}, true, nil
	default:
		logrus.WithField("product_id", sale.ProductID).Debug("sale skipped, product not found")
		return ReportLine{}, false, nil
	}
}

// writeMonthlyReportFile renders the legacy fixed-width report layout.
func writeMonthlyReportFile(path, monthYear string, lines []ReportLine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating report %s: %v", ErrFileUnavailable, path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "--- Monthly Sales Report: %s ---\n", monthYear)
	fmt.Fprintf(w, "%-10s %-20s %-10s %-10s\n", "Date", "Product Name", "Qty Sold", "Price")
	for _, line := range lines {
		fmt.Fprintf(w, "%-10s %-20s %-10d $%-10.2f\n",
			line.Sale.Date, line.ProductName, line.Sale.Quantity, line.Price)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", path, err)
	}
	return nil
}
