package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ImportProductsXLSX reads products from a spreadsheet export. The
// first sheet must carry a header row with ID, Name, Brand, Price,
// Stock, Warranty and Provider columns, in any column order. Rows that
// fail to parse are skipped and logged rather than failing the import.
func ImportProductsXLSX(path string) ([]Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find header row and column indices
	cols := map[string]int{}
	dataStartRow := -1

	for i, row := range rows {
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "id", "product id":
				cols["id"] = j
			case "name", "product name":
				cols["name"] = j
			case "brand":
				cols["brand"] = j
			case "price":
				cols["price"] = j
			case "stock", "quantity":
				cols["stock"] = j
			case "warranty", "warranty months":
				cols["warranty"] = j
			case "provider", "warranty provider":
				cols["provider"] = j
			}
		}
		if len(cols) == 7 {
			dataStartRow = i + 1
			break
		}
		cols = map[string]int{}
	}

	if dataStartRow == -1 {
		return nil, fmt.Errorf("could not find a header row with ID, Name, Brand, Price, Stock, Warranty and Provider columns")
	}

	var products []Product
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		p, err := productFromRow(row, cols)
		if err != nil {
			if !rowEmpty(row) {
				logrus.WithFields(logrus.Fields{
					"row": i + 1,
					"err": err,
				}).Warn("import row skipped")
			}
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

func productFromRow(row []string, cols map[string]int) (Product, error) {
	cell := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var p Product
	var err error
	if p.ID, err = strconv.Atoi(cell("id")); err != nil {
		return Product{}, fmt.Errorf("id: %w", err)
	}
	p.Name = cell("name")
	p.Brand = cell("brand")
	if p.Price, err = strconv.ParseFloat(strings.ReplaceAll(cell("price"), ",", "."), 64); err != nil {
		return Product{}, fmt.Errorf("price: %w", err)
	}
	if p.Stock, err = strconv.Atoi(cell("stock")); err != nil {
		return Product{}, fmt.Errorf("stock: %w", err)
	}
	if p.Warranty.Months, err = strconv.Atoi(cell("warranty")); err != nil {
		return Product{}, fmt.Errorf("warranty: %w", err)
	}
	p.Warranty.Provider = cell("provider")

	if err := validateProduct(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func init() {
	RegisterImporter("xlsx", ImporterFunc(ImportProductsXLSX))
}
