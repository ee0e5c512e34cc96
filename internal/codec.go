package internal

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// The data files use a fixed quoted-field format inherited from earlier
// tooling: text fields are always double-quoted, numeric fields never
// are, and prices carry exactly two decimals. Embedded double quotes in
// text fields are not supported by the format and corrupt the line on
// round-trip, so they are rejected at input validation instead.
//
// Product line: id,"name","brand",price,stock,warranty_months,"provider"
// Sale line:    product_id,"customer","date",quantity

const (
	productFieldCount = 7
	saleFieldCount    = 4
)

// MalformedRecordError reports a data file line that failed to decode.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// EncodeProduct encodes a product as one line of the product file,
// without a trailing newline.
func EncodeProduct(p Product) string {
	return fmt.Sprintf("%d,\"%s\",\"%s\",%.2f,%d,%d,\"%s\"",
		p.ID, p.Name, p.Brand, p.Price, p.Stock, p.Warranty.Months, p.Warranty.Provider)
}

// EncodeSale encodes a sale record as one line of the sales file,
// without a trailing newline.
func EncodeSale(s SaleRecord) string {
	return fmt.Sprintf("%d,\"%s\",\"%s\",%d",
		s.ProductID, s.Customer, s.Date, s.Quantity)
}

// DecodeProduct decodes one product file line. Quoted fields may contain
// commas. Any shape or conversion failure is returned as an error rather
// than a half-populated record.
func DecodeProduct(line string) (Product, error) {
	fields, err := splitLine(line, productFieldCount)
	if err != nil {
		return Product{}, err
	}

	var p Product
	if p.ID, err = intField("id", fields[0]); err != nil {
		return Product{}, err
	}
	p.Name = fields[1]
	p.Brand = fields[2]
	if p.Price, err = floatField("price", fields[3]); err != nil {
		return Product{}, err
	}
	if p.Stock, err = intField("stock", fields[4]); err != nil {
		return Product{}, err
	}
	if p.Warranty.Months, err = intField("warranty_months", fields[5]); err != nil {
		return Product{}, err
	}
	p.Warranty.Provider = fields[6]
	return p, nil
}

// DecodeSale decodes one sales file line.
func DecodeSale(line string) (SaleRecord, error) {
	fields, err := splitLine(line, saleFieldCount)
	if err != nil {
		return SaleRecord{}, err
	}

	var s SaleRecord
	if s.ProductID, err = intField("product_id", fields[0]); err != nil {
		return SaleRecord{}, err
	}
	s.Customer = fields[1]
	s.Date = fields[2]
	if s.Quantity, err = intField("quantity_sold", fields[3]); err != nil {
		return SaleRecord{}, err
	}
	return s, nil
}

// splitLine splits a single record line into its fields, honoring the
// quoted-field convention.
func splitLine(line string, want int) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("splitting fields: %w", err)
	}
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}
	return fields, nil
}

func intField(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return v, nil
}

func floatField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return v, nil
}
