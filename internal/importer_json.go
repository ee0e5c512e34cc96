package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONProductFile is a minimal JSON format for bulk product loading.
// Example:
//
//	{
//	  "products": [
//	    {"id": 10, "name": "Laptop Pro", "brand": "TechCorp", "price": 999.99,
//	     "stock": 5, "warranty_months": 24, "provider": "TechCorp Care"}
//	  ]
//	}
//
// This format is easy to produce from any other inventory system.
type JSONProductFile struct {
	Products []JSONProduct `json:"products"`
}

type JSONProduct struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	WarrantyMonths int     `json:"warranty_months"`
	Provider       string  `json:"provider"`
}

// ImportProductsJSON reads products from a JSON file in the simple
// product format.
func ImportProductsJSON(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData JSONProductFile
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var products []Product
	for i, jp := range jsonData.Products {
		p := Product{
			ID:    jp.ID,
			Name:  jp.Name,
			Brand: jp.Brand,
			Price: jp.Price,
			Stock: jp.Stock,
			Warranty: Warranty{
				Months:   jp.WarrantyMonths,
				Provider: jp.Provider,
			},
		}
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i+1, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func init() {
	RegisterImporter("json", ImporterFunc(ImportProductsJSON))
}
