package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mollergaard/sales-ledger/internal"
)

func menuTestSetup(t *testing.T) (*internal.Store, *internal.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := internal.DefaultConfig()
	cfg.ProductsFile = filepath.Join(dir, "products.txt")
	cfg.SalesFile = filepath.Join(dir, "sales_records.txt")
	cfg.ReportDir = dir

	store, err := internal.Open(cfg)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	return store, cfg
}

func runScript(t *testing.T, store *internal.Store, cfg *internal.Config, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	RunMenu(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, store, cfg)
	return out.String()
}

func TestMenuExit(t *testing.T) {
	store, cfg := menuTestSetup(t)

	out := runScript(t, store, cfg, "0")
	if !strings.Contains(out, "Exiting system. Goodbye!") {
		t.Errorf("missing exit message in output:\n%s", out)
	}
}

func TestMenuInvalidOption(t *testing.T) {
	store, cfg := menuTestSetup(t)

	out := runScript(t, store, cfg, "42", "0")
	if !strings.Contains(out, "Invalid option. Please try again.") {
		t.Errorf("missing invalid-option message in output:\n%s", out)
	}
}

func TestMenuAddProduct(t *testing.T) {
	store, cfg := menuTestSetup(t)

	out := runScript(t, store, cfg,
		"2",             // Add New Product
		"10",            // ID
		"Laptop Pro",    // Name
		"TechCorp",      // Brand
		"999.99",        // Price
		"5",             // Stock
		"24",            // Warranty Months
		"TechCorp Care", // Provider
		"0",
	)

	if !strings.Contains(out, "Product added and saved successfully.") {
		t.Fatalf("add did not succeed:\n%s", out)
	}
	if len(store.Products()) != 1 {
		t.Fatalf("expected 1 product in store, got %d", len(store.Products()))
	}

	data, err := os.ReadFile(cfg.ProductsFile)
	if err != nil {
		t.Fatalf("product file not written: %v", err)
	}
	want := "10,\"Laptop Pro\",\"TechCorp\",999.99,5,24,\"TechCorp Care\"\n"
	if string(data) != want {
		t.Errorf("product file mismatch:\ngot  %q\nwant %q", string(data), want)
	}
}

func TestMenuSellProduct(t *testing.T) {
	store, cfg := menuTestSetup(t)
	p := internal.Product{
		ID: 1, Name: "Phone", Brand: "Acme", Price: 10.00, Stock: 5,
		Warranty: internal.Warranty{Months: 12, Provider: "Acme Support"},
	}
	if err := internal.AddProduct(store, p); err != nil {
		t.Fatal(err)
	}

	out := runScript(t, store, cfg,
		"3",
		"1",          // Product ID
		"3",          // Quantity
		"Jane Smith", // Customer
		"05/10/2025", // Date
		"0",
	)

	if !strings.Contains(out, "Product Found: Phone. Current Stock: 5") {
		t.Errorf("missing product preview:\n%s", out)
	}
	if !strings.Contains(out, "Transaction completed successfully! Stock updated: 2 remaining.") {
		t.Errorf("missing transaction confirmation:\n%s", out)
	}
	if len(store.Sales()) != 1 {
		t.Errorf("expected 1 recorded sale, got %d", len(store.Sales()))
	}
}

func TestMenuSellUnknownProduct(t *testing.T) {
	store, cfg := menuTestSetup(t)

	out := runScript(t, store, cfg, "3", "99", "0")
	if !strings.Contains(out, "Error: Product ID not found.") {
		t.Errorf("missing not-found message:\n%s", out)
	}
}

func TestMenuModifyLastProduct(t *testing.T) {
	store, cfg := menuTestSetup(t)
	p := internal.Product{
		ID: 1, Name: "Phone", Brand: "Acme", Price: 10.00, Stock: 5,
		Warranty: internal.Warranty{Months: 12, Provider: "Acme Support"},
	}
	if err := internal.AddProduct(store, p); err != nil {
		t.Fatal(err)
	}

	out := runScript(t, store, cfg,
		"1",
		"",       // blank id targets the last added product
		"3",      // Price
		"129.90", // new value
		"0",
	)

	if !strings.Contains(out, "Database updated successfully!") {
		t.Fatalf("modify did not succeed:\n%s", out)
	}
	if store.Products()[0].Price != 129.90 {
		t.Errorf("expected updated price 129.90, got %.2f", store.Products()[0].Price)
	}
}

func TestMenuModifyByID(t *testing.T) {
	store, cfg := menuTestSetup(t)
	for _, p := range []internal.Product{
		{ID: 1, Name: "Phone", Brand: "Acme", Price: 10.00, Stock: 5,
			Warranty: internal.Warranty{Months: 12, Provider: "Acme Support"}},
		{ID: 2, Name: "Tablet", Brand: "Acme", Price: 25.50, Stock: 4,
			Warranty: internal.Warranty{Months: 12, Provider: "Acme Support"}},
	} {
		if err := internal.AddProduct(store, p); err != nil {
			t.Fatal(err)
		}
	}

	out := runScript(t, store, cfg,
		"1",
		"1",         // target the first product by id
		"1",         // Name
		"Phone Max", // new value
		"0",
	)

	if !strings.Contains(out, "Database updated successfully!") {
		t.Fatalf("modify did not succeed:\n%s", out)
	}
	if store.Products()[0].Name != "Phone Max" {
		t.Errorf("expected renamed first product, got %q", store.Products()[0].Name)
	}
	if store.Products()[1].Name != "Tablet" {
		t.Errorf("second product must be untouched, got %q", store.Products()[1].Name)
	}
}

func TestMenuMonthlyReport(t *testing.T) {
	store, cfg := menuTestSetup(t)
	p := internal.Product{
		ID: 1, Name: "Phone", Brand: "Acme", Price: 10.00, Stock: 5,
		Warranty: internal.Warranty{Months: 12, Provider: "Acme Support"},
	}
	if err := internal.AddProduct(store, p); err != nil {
		t.Fatal(err)
	}
	if _, err := internal.SellProduct(store, 1, 2, "Jane", "05/10/2025"); err != nil {
		t.Fatal(err)
	}

	out := runScript(t, store, cfg, "7", "10/2025", "0")

	wantPath := filepath.Join(cfg.ReportDir, "October_Sales_Report_2559321.txt")
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if !strings.Contains(out, "Report written:") {
		t.Errorf("missing report confirmation:\n%s", out)
	}
}

func TestMenuImportJSON(t *testing.T) {
	store, cfg := menuTestSetup(t)

	path := filepath.Join(t.TempDir(), "bulk.json")
	content := `{"products": [
  {"id": 1, "name": "Phone", "brand": "Acme", "price": 10.0, "stock": 5,
   "warranty_months": 12, "provider": "Acme Support"},
  {"id": 2, "name": "Tablet", "brand": "Acme", "price": 25.5, "stock": 4,
   "warranty_months": 12, "provider": "Acme Support"}
]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out := runScript(t, store, cfg, "9", path, "0")

	if !strings.Contains(out, "Imported 2 products.") {
		t.Fatalf("import did not succeed:\n%s", out)
	}
	if len(store.Products()) != 2 {
		t.Errorf("expected 2 products after import, got %d", len(store.Products()))
	}
}
