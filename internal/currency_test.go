package internal

import "testing"

func TestFormatUSD(t *testing.T) {
	cur := GetCurrency("USD")

	tests := []struct {
		amount float64
		want   string
	}{
		{30, "$30.00"},
		{999.99, "$999.99"},
		{0, "$0.00"},
		{10.5, "$10.50"},
	}

	for _, tt := range tests {
		if got := cur.Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSEK(t *testing.T) {
	cur := GetCurrency("SEK")

	// Swedish formatting uses a decimal comma and a suffixed symbol.
	if got := cur.Format(10); got != "10,00 kr" {
		t.Errorf("Format(10) = %q, want %q", got, "10,00 kr")
	}
}

func TestGetCurrencyLowercaseCode(t *testing.T) {
	cur := GetCurrency("usd")
	if cur.Code != "USD" {
		t.Errorf("expected normalized code USD, got %q", cur.Code)
	}
}

func TestGetCurrencyUnknownCodeFallsBack(t *testing.T) {
	cur := GetCurrency("WUZ")
	if got := cur.Format(5); got != "5.00 WUZ" {
		t.Errorf("Format(5) = %q, want %q", got, "5.00 WUZ")
	}
}
