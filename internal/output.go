package internal

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintProductsTable renders the product collection in insertion order.
func PrintProductsTable(w io.Writer, products []Product, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"ID", "Name", "Brand", "Price", "Stock", "Warranty", "Provider"})
	for _, p := range products {
		t.AppendRow(table.Row{
			p.ID,
			p.Name,
			p.Brand,
			cur.Format(p.Price),
			p.Stock,
			fmt.Sprintf("%d mo", p.Warranty.Months),
			p.Warranty.Provider,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()
}

// PrintSingleProduct renders one product, used around modifications to
// show before/after state.
func PrintSingleProduct(w io.Writer, p Product, cur Currency) {
	PrintProductsTable(w, []Product{p}, cur)
}

// PrintSalesTable renders the sales collection in insertion order.
func PrintSalesTable(w io.Writer, sales []SaleRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"Product ID", "Customer", "Date", "Qty"})
	for _, s := range sales {
		t.AppendRow(table.Row{s.ProductID, s.Customer, s.Date, s.Quantity})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
}

// PrintRevenueTable renders revenue report line items with a footer
// total.
func PrintRevenueTable(w io.Writer, year int, lines []ReportLine, total float64, cur Currency) {
	fmt.Fprintf(w, "Revenue Report (Year: %d)\n", year)

	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"Date", "Product", "Customer", "Qty", "Revenue"})
	for _, line := range lines {
		t.AppendRow(table.Row{
			line.Sale.Date,
			line.ProductName,
			line.Sale.Customer,
			line.Sale.Quantity,
			cur.Format(line.Revenue),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", "", text.Bold.Sprint("Total"), text.Bold.Sprint(cur.Format(total))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()
}

// PrintMonthlyTable renders the line items of a generated monthly
// report to the terminal; the report file itself keeps the legacy
// fixed-width layout.
func PrintMonthlyTable(w io.Writer, monthYear string, res *MonthlyReportResult, cur Currency) {
	fmt.Fprintf(w, "Monthly Sales Report: %s\n", monthYear)

	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"Date", "Product", "Qty", "Price"})
	for _, line := range res.Lines {
		t.AppendRow(table.Row{
			line.Sale.Date,
			line.ProductName,
			line.Sale.Quantity,
			cur.Format(line.Price),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
	fmt.Fprintf(w, "Report written: %s (%d records)\n", res.Path, res.Matched)
}
