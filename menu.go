package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mollergaard/sales-ledger/internal"
)

// RunMenu drives the interactive operator loop. Operation failures are
// reported and the loop continues; only Exit (or end of input) leaves
// it.
func RunMenu(r io.Reader, w io.Writer, store *internal.Store, cfg *internal.Config) {
	in := bufio.NewScanner(r)
	cur := internal.GetCurrency(cfg.Currency)

	for {
		fmt.Fprint(w, "\n=== Product Sales Management System ===\n")
		fmt.Fprint(w, "1. Modify Product Info\n")
		fmt.Fprint(w, "2. Add New Product\n")
		fmt.Fprint(w, "3. Sell a Product (Update Stock & Record)\n")
		fmt.Fprint(w, "4. Sort Products by Price\n")
		fmt.Fprint(w, "5. Print Product List\n")
		fmt.Fprint(w, "6. Revenue Calculation Report\n")
		fmt.Fprint(w, "7. Generate Monthly Sales Report\n")
		fmt.Fprint(w, "8. Print Sales Records\n")
		fmt.Fprint(w, "9. Import Products (xlsx/json)\n")
		fmt.Fprint(w, "0. Exit\n")

		choice, ok := promptLine(in, w, "Select an option: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			menuModifyProduct(in, w, store, cur)
		case "2":
			menuAddProduct(in, w, store)
		case "3":
			menuSellProduct(in, w, store)
		case "4":
			if err := internal.SortByPrice(store, cfg.PersistAfterSort); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(w, "Products sorted by price.")
		case "5":
			internal.PrintProductsTable(w, store.Products(), cur)
		case "6":
			lines, total, err := internal.RevenueReport(store, cfg.ReportYear, cfg.OnUnresolved)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			internal.PrintRevenueTable(w, cfg.ReportYear, lines, total, cur)
		case "7":
			menuMonthlyReport(in, w, store, cfg, cur)
		case "8":
			internal.PrintSalesTable(w, store.Sales())
		case "9":
			menuImportProducts(in, w, store)
		case "0":
			fmt.Fprintln(w, "Exiting system. Goodbye!")
			return
		default:
			fmt.Fprintln(w, "Invalid option. Please try again.")
		}
	}
}

func menuModifyProduct(in *bufio.Scanner, w io.Writer, store *internal.Store, cur internal.Currency) {
	products := store.Products()
	if len(products) == 0 {
		fmt.Fprintln(w, "Error: No products in database to modify.")
		return
	}

	idText, ok := promptLine(in, w, "Enter Product ID (blank for last added): ")
	if !ok {
		return
	}
	idText = strings.TrimSpace(idText)

	// Show the targeted product before modification.
	target := products[len(products)-1]
	byID := false
	var id int
	if idText != "" {
		var err error
		id, err = strconv.Atoi(idText)
		if err != nil {
			fmt.Fprintf(w, "Error: invalid product id %q.\n", idText)
			return
		}
		byID = true
		found := false
		for _, p := range products {
			if p.ID == id {
				target = p
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(w, "Error: Product ID not found.\n")
			return
		}
	}

	fmt.Fprintln(w, "Current Information (Before Modification):")
	internal.PrintSingleProduct(w, target, cur)

	fmt.Fprint(w, "\n--- Modify Attribute ---\n")
	fmt.Fprint(w, "1. Product Name\n")
	fmt.Fprint(w, "2. Brand\n")
	fmt.Fprint(w, "3. Price\n")
	fmt.Fprint(w, "4. Stock Quantity\n")
	fmt.Fprint(w, "5. Warranty Months\n")
	fmt.Fprint(w, "6. Warranty Provider\n")
	fmt.Fprint(w, "0. Cancel\n")

	choice, ok := promptLine(in, w, "Select attribute to modify: ")
	if !ok {
		return
	}

	var field internal.ProductField
	switch strings.TrimSpace(choice) {
	case "0":
		fmt.Fprintln(w, "Modification cancelled.")
		return
	case "1":
		field = internal.FieldName
	case "2":
		field = internal.FieldBrand
	case "3":
		field = internal.FieldPrice
	case "4":
		field = internal.FieldStock
	case "5":
		field = internal.FieldWarrantyMonths
	case "6":
		field = internal.FieldProvider
	default:
		fmt.Fprintln(w, "Invalid selection.")
		return
	}

	value, ok := promptLine(in, w, "Enter new value: ")
	if !ok {
		return
	}

	var updated *internal.Product
	var err error
	if byID {
		updated, err = internal.ModifyProduct(store, id, field, value)
	} else {
		updated, err = internal.ModifyLastProduct(store, field, value)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Updated Information (After Modification):")
	internal.PrintSingleProduct(w, *updated, cur)
	fmt.Fprintln(w, "Database updated successfully!")
}

func menuAddProduct(in *bufio.Scanner, w io.Writer, store *internal.Store) {
	id, ok := promptInt(in, w, "Enter Product ID: ")
	if !ok {
		return
	}
	name, ok := promptLine(in, w, "Enter Name: ")
	if !ok {
		return
	}
	brand, ok := promptLine(in, w, "Enter Brand: ")
	if !ok {
		return
	}
	price, ok := promptFloat(in, w, "Enter Price: ")
	if !ok {
		return
	}
	stock, ok := promptInt(in, w, "Enter Stock Quantity: ")
	if !ok {
		return
	}
	months, ok := promptInt(in, w, "Enter Warranty Months: ")
	if !ok {
		return
	}
	provider, ok := promptLine(in, w, "Enter Warranty Provider: ")
	if !ok {
		return
	}

	p := internal.Product{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Brand: strings.TrimSpace(brand),
		Price: price,
		Stock: stock,
		Warranty: internal.Warranty{
			Months:   months,
			Provider: strings.TrimSpace(provider),
		},
	}
	if err := internal.AddProduct(store, p); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Product added and saved successfully.")
}

func menuSellProduct(in *bufio.Scanner, w io.Writer, store *internal.Store) {
	id, ok := promptInt(in, w, "Enter Product ID to sell: ")
	if !ok {
		return
	}

	// Show the match before asking for the rest, like the original flow.
	found := false
	for _, p := range store.Products() {
		if p.ID == id {
			fmt.Fprintf(w, "Product Found: %s. Current Stock: %d\n", p.Name, p.Stock)
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(w, "Error: Product ID not found.")
		return
	}

	qty, ok := promptInt(in, w, "Enter Quantity to Sell: ")
	if !ok {
		return
	}
	customer, ok := promptLine(in, w, "Enter Customer Name: ")
	if !ok {
		return
	}
	date, ok := promptLine(in, w, "Enter Date (DD/MM/YYYY): ")
	if !ok {
		return
	}

	stock, err := internal.SellProduct(store, id, qty, strings.TrimSpace(customer), strings.TrimSpace(date))
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Transaction completed successfully! Stock updated: %d remaining.\n", stock)
}

func menuMonthlyReport(in *bufio.Scanner, w io.Writer, store *internal.Store, cfg *internal.Config, cur internal.Currency) {
	monthYear, ok := promptLine(in, w, "Enter Month/Year (MM/YYYY): ")
	if !ok {
		return
	}

	res, err := internal.MonthlyReport(store, strings.TrimSpace(monthYear), internal.MonthlyReportOptions{
		Mode:     cfg.MonthlyMatchMode,
		ReportID: cfg.ReportID,
		Dir:      cfg.ReportDir,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	internal.PrintMonthlyTable(w, strings.TrimSpace(monthYear), res, cur)
}

func menuImportProducts(in *bufio.Scanner, w io.Writer, store *internal.Store) {
	path, ok := promptLine(in, w, "Enter file to import: ")
	if !ok {
		return
	}
	path = strings.TrimSpace(path)

	imp, err := internal.ImporterForPath(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	products, err := imp.Import(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	added := 0
	for _, p := range products {
		if err := internal.AddProduct(store, p); err != nil {
			fmt.Fprintf(w, "Error after %d products: %v\n", added, err)
			return
		}
		added++
	}
	fmt.Fprintf(w, "Imported %d products.\n", added)
}

func promptLine(in *bufio.Scanner, w io.Writer, prompt string) (string, bool) {
	fmt.Fprint(w, prompt)
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}

func promptInt(in *bufio.Scanner, w io.Writer, prompt string) (int, bool) {
	text, ok := promptLine(in, w, prompt)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		fmt.Fprintf(w, "Error: invalid number %q.\n", strings.TrimSpace(text))
		return 0, false
	}
	return v, true
}

func promptFloat(in *bufio.Scanner, w io.Writer, prompt string) (float64, bool) {
	text, ok := promptLine(in, w, prompt)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid number %q.\n", strings.TrimSpace(text))
		return 0, false
	}
	return v, true
}
