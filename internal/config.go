package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Legacy defaults. They match the data files and limits of the earlier
// system so existing files keep working unchanged.
const (
	DefaultProductsFile = "products.txt"
	DefaultSalesFile    = "sales_records.txt"
	DefaultMaxProducts  = 100
	DefaultMaxSales     = 200
	DefaultReportYear   = 2025
)

// Config holds the operator-tunable settings. Every field has a legacy
// default; a config file only needs the fields it wants to change.
type Config struct {
	// ProductsFile and SalesFile are the two backing data files.
	ProductsFile string `yaml:"products_file,omitempty"`
	SalesFile    string `yaml:"sales_file,omitempty"`

	// MaxProducts and MaxSales bound the collections. An explicit zero
	// means unbounded.
	MaxProducts int `yaml:"max_products,omitempty"`
	MaxSales    int `yaml:"max_sales,omitempty"`

	// Currency is the display currency code (files always store plain
	// numbers).
	Currency string `yaml:"currency,omitempty"`

	// ReportYear is the default year for the revenue report.
	ReportYear int `yaml:"report_year,omitempty"`

	// ReportID is the fixed suffix of monthly report file names.
	ReportID string `yaml:"report_id,omitempty"`

	// ReportDir is the directory monthly report files are written to.
	ReportDir string `yaml:"report_dir,omitempty"`

	// PersistAfterSort rewrites the product file after sorting by
	// price. Off by default: the legacy system kept sorted order
	// session-only.
	PersistAfterSort bool `yaml:"persist_after_sort,omitempty"`

	// MonthlyMatchMode is "substring" (legacy) or "structured".
	MonthlyMatchMode MatchMode `yaml:"monthly_match_mode,omitempty"`

	// OnUnresolved is the revenue report policy for sales whose
	// product id doesn't resolve: "skip" (legacy), "error" or
	// "placeholder".
	OnUnresolved UnresolvedPolicy `yaml:"on_unresolved,omitempty"`
}

// DefaultConfigPath returns the default config file path
// (~/.sales-ledger/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sales-ledger", "config.yaml")
}

// DefaultConfig returns a config with all legacy defaults applied.
func DefaultConfig() *Config {
	return &Config{
		ProductsFile:     DefaultProductsFile,
		SalesFile:        DefaultSalesFile,
		MaxProducts:      DefaultMaxProducts,
		MaxSales:         DefaultMaxSales,
		Currency:         "USD",
		ReportYear:       DefaultReportYear,
		ReportID:         DefaultReportID,
		ReportDir:        ".",
		MonthlyMatchMode: MatchSubstring,
		OnUnresolved:     UnresolvedSkip,
	}
}

// LoadConfig reads a yaml config file and overlays it on the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	switch cfg.MonthlyMatchMode {
	case MatchSubstring, MatchStructured:
	default:
		return nil, fmt.Errorf("invalid monthly_match_mode %q (want substring or structured)", cfg.MonthlyMatchMode)
	}
	switch cfg.OnUnresolved {
	case UnresolvedSkip, UnresolvedError, UnresolvedPlaceholder:
	default:
		return nil, fmt.Errorf("invalid on_unresolved %q (want skip, error or placeholder)", cfg.OnUnresolved)
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
