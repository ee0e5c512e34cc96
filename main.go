package main

import (
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/mollergaard/sales-ledger/internal"
)

type Params struct {
	Config  string `descr:"Path to config file (default: ~/.sales-ledger/config.yaml)"`
	Verbose bool   `descr:"Enable debug logging"`
}

func main() {
	boa.NewCmdT[Params]("sales-ledger").
		WithShort("Menu-driven inventory and sales ledger backed by flat text files").
		WithLong("Manages an in-memory product inventory and sales ledger persisted to two CSV-like text files. Products are rewritten wholesale on every change; sales are append-only. Reports cover yearly revenue and monthly sales.").
		WithRunFunc(func(params *Params) {
			internal.SetupLogging(params.Verbose)

			cfg, err := loadConfig(params.Config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("Initializing System...")
			store, err := internal.Open(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading data files: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Loaded %d products.\n", len(store.Products()))
			fmt.Printf("Loaded %d sales records.\n", len(store.Sales()))
			fmt.Println("System Ready.")

			RunMenu(os.Stdin, os.Stdout, store, cfg)

			if store.Dirty() {
				fmt.Fprintln(os.Stderr, "Warning: some changes could not be written; in-memory state diverged from the data files.")
				os.Exit(1)
			}
		}).
		Run()
}

// loadConfig resolves the config: an explicit path must load, the
// default path is optional.
func loadConfig(path string) (*internal.Config, error) {
	if path != "" {
		return internal.LoadConfig(path)
	}

	defaultPath := internal.DefaultConfigPath()
	if defaultPath != "" {
		if _, err := os.Stat(defaultPath); err == nil {
			return internal.LoadConfig(defaultPath)
		}
	}
	return internal.DefaultConfig(), nil
}
