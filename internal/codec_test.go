package internal

import (
	"strings"
	"testing"
)

func TestEncodeProduct(t *testing.T) {
	p := Product{
		ID:    10,
		Name:  "Laptop Pro",
		Brand: "TechCorp",
		Price: 999.99,
		Stock: 5,
		Warranty: Warranty{
			Months:   24,
			Provider: "TechCorp Care",
		},
	}

	got := EncodeProduct(p)
	want := `10,"Laptop Pro","TechCorp",999.99,5,24,"TechCorp Care"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeProductPriceAlwaysTwoDecimals(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{10, "10.00"},
		{10.5, "10.50"},
		{0, "0.00"},
		{999.999, "1000.00"},
	}

	for _, tt := range tests {
		line := EncodeProduct(Product{ID: 1, Name: "X", Price: tt.price})
		if !strings.Contains(line, ","+tt.want+",") {
			t.Errorf("price %v: expected %q in line %q", tt.price, tt.want, line)
		}
	}
}

func TestProductRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Product
	}{
		{
			name: "plain fields",
			p: Product{
				ID: 1, Name: "Phone", Brand: "Acme", Price: 499.50, Stock: 12,
				Warranty: Warranty{Months: 12, Provider: "Acme Support"},
			},
		},
		{
			name: "commas inside quoted fields",
			p: Product{
				ID: 2, Name: "Desk, Standing", Brand: "Oak & Co, Ltd", Price: 120.00, Stock: 3,
				Warranty: Warranty{Months: 0, Provider: "Home, Office"},
			},
		},
		{
			name: "empty optional text fields",
			p: Product{
				ID: 3, Name: "Cable", Price: 5.25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeProduct(EncodeProduct(tt.p))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got != tt.p {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, tt.p)
			}
		})
	}
}

func TestSaleRoundTrip(t *testing.T) {
	s := SaleRecord{
		ProductID: 10,
		Customer:  "Smith, Jane",
		Date:      "05/10/2025",
		Quantity:  3,
	}

	line := EncodeSale(s)
	want := `10,"Smith, Jane","05/10/2025",3`
	if line != want {
		t.Errorf("expected %q, got %q", want, line)
	}

	got, err := DecodeSale(line)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestDecodeProductMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not a record", "garbage"},
		{"too few fields", `1,"a","b",9.99,5`},
		{"too many fields", `1,"a","b",9.99,5,12,"c",extra`},
		{"bad id", `x,"a","b",9.99,5,12,"c"`},
		{"bad price", `1,"a","b",cheap,5,12,"c"`},
		{"bad stock", `1,"a","b",9.99,lots,12,"c"`},
		{"bad warranty months", `1,"a","b",9.99,5,long,"c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeProduct(tt.line); err == nil {
				t.Errorf("expected error for %q", tt.line)
			}
		})
	}
}

func TestDecodeSaleMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", `10,"Jane","05/10/2025"`},
		{"bad product id", `ten,"Jane","05/10/2025",3`},
		{"bad quantity", `10,"Jane","05/10/2025",some`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSale(tt.line); err == nil {
				t.Errorf("expected error for %q", tt.line)
			}
		})
	}
}
