package internal

// MaxTextLen is the longest text field value the legacy data files carry.
// Values are bounded at input validation, not by the codec.
const MaxTextLen = 49

// SaleDateLayout is the exact textual layout of sale dates.
// Downstream report filtering depends on fixed character offsets in it.
const SaleDateLayout = "02/01/2006" // DD/MM/YYYY

// Warranty is the warranty embedded in every product.
type Warranty struct {
	Months   int    `validate:"min=0"`
	Provider string `validate:"max=49"`
}

// Product is one inventory entry. IDs are not required to be unique;
// lookups take the first match in collection order.
type Product struct {
	ID       int     `validate:"min=0"`
	Name     string  `validate:"required,max=49"`
	Brand    string  `validate:"max=49"`
	Price    float64 `validate:"min=0"`
	Stock    int     `validate:"min=0"`
	Warranty Warranty
}

// SaleRecord is one recorded sale. Records are append-only and never
// mutated after creation. ProductID references a product by convention
// only; resolution happens at report time.
type SaleRecord struct {
	ProductID int    `validate:"min=0"`
	Customer  string `validate:"required,max=49"`
	Date      string `validate:"datetime=02/01/2006"`
	Quantity  int    `validate:"gt=0"`
}

// ReportLine is one row of a generated report: a sale enriched with the
// product data it resolved to.
type ReportLine struct {
	Sale        SaleRecord
	ProductName string
	Price       float64
	Revenue     float64
}
