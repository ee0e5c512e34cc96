package internal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProductField names a single modifiable product attribute.
type ProductField string

const (
	FieldName           ProductField = "name"
	FieldBrand          ProductField = "brand"
	FieldPrice          ProductField = "price"
	FieldStock          ProductField = "stock"
	FieldWarrantyMonths ProductField = "warranty_months"
	FieldProvider       ProductField = "provider"
)

// AddProduct validates the product, appends it to the collection and
// rewrites the product file. Duplicate IDs are allowed; lookups resolve
// to the first match in collection order.
func AddProduct(st *Store, p Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := st.addProduct(p); err != nil {
		return err
	}
	return st.SaveProducts()
}

// ModifyProduct updates exactly one field of the first product matching
// id, then rewrites the product file. The new value arrives as operator
// input text and is converted per field.
func ModifyProduct(st *Store, id int, field ProductField, value string) (*Product, error) {
	for i := range st.products {
		if st.products[i].ID == id {
			return modifyAt(st, i, field, value)
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ModifyLastProduct updates one field of the most recently added
// product. Kept for parity with the legacy position-based workflow;
// ModifyProduct is the id-based path.
func ModifyLastProduct(st *Store, field ProductField, value string) (*Product, error) {
	if len(st.products) == 0 {
		return nil, ErrNoProducts
	}
	return modifyAt(st, len(st.products)-1, field, value)
}

func modifyAt(st *Store, idx int, field ProductField, value string) (*Product, error) {
	updated := st.products[idx]
	if err := applyField(&updated, field, value); err != nil {
		return nil, err
	}
	if err := validateProduct(updated); err != nil {
		return nil, err
	}

	st.products[idx] = updated
	if err := st.SaveProducts(); err != nil {
		return &st.products[idx], err
	}
	return &st.products[idx], nil
}

func applyField(p *Product, field ProductField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		p.Name = value
	case FieldBrand:
		p.Brand = value
	case FieldPrice:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", value, err)
		}
		p.Price = v
	case FieldStock:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid stock %q: %w", value, err)
		}
		p.Stock = v
	case FieldWarrantyMonths:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid warranty months %q: %w", value, err)
		}
		p.Warranty.Months = v
	case FieldProvider:
		p.Warranty.Provider = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// SellProduct records a sale against stock: it resolves the product by
// id (first match), checks stock sufficiency, decrements stock, appends
// the sale to memory and the sales file, and rewrites the product file.
// On ErrNotFound or ErrInsufficientStock both collections and both
// files are left untouched. Returns the updated stock level.
func SellProduct(st *Store, id, qty int, customer, date string) (int, error) {
	rec := SaleRecord{ProductID: id, Customer: customer, Date: date, Quantity: qty}
	if err := validateSale(rec); err != nil {
		return 0, err
	}

	idx := -1
	for i := range st.products {
		if st.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	p := &st.products[idx]
	if qty > p.Stock {
		return p.Stock, fmt.Errorf("%w: requested %d, in stock %d", ErrInsufficientStock, qty, p.Stock)
	}
	if st.maxSales > 0 && len(st.sales) >= st.maxSales {
		return p.Stock, fmt.Errorf("%w: sales collection full (%d)", ErrCapacityExceeded, st.maxSales)
	}

	p.Stock -= qty

	// Write-through: the sale line first, then the full product rewrite
	// because stock changed. A failed write keeps the in-memory change
	// and marks the store dirty.
	if err := st.RecordSale(rec); err != nil {
		return p.Stock, err
	}
	if err := st.SaveProducts(); err != nil {
		return p.Stock, err
	}
	return p.Stock, nil
}

// SortByPrice reorders the product collection ascending by price. Ties
// keep their order of appearance. The sorted order is session-only
// unless persist is set, which rewrites the product file to match.
func SortByPrice(st *Store, persist bool) error {
	sort.SliceStable(st.products, func(i, j int) bool {
		return st.products[i].Price < st.products[j].Price
	})
	if !persist {
		return nil
	}
	return st.SaveProducts()
}

func validateProduct(p Product) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	if strings.ContainsRune(p.Name, '"') || strings.ContainsRune(p.Brand, '"') ||
		strings.ContainsRune(p.Warranty.Provider, '"') {
		return fmt.Errorf("invalid product: text fields must not contain double quotes")
	}
	return nil
}

func validateSale(s SaleRecord) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid sale: %w", err)
	}
	if strings.ContainsRune(s.Customer, '"') {
		return fmt.Errorf("invalid sale: customer name must not contain double quotes")
	}
	return nil
}
