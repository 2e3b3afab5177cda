package product

import "strconv"

// Product is one product record, keyed by ID.
type Product struct {
	ID             string
	Name           string
	Price          float64
	StockAvailable int
}

// Column positions in the delimited product layout.
const (
	colID = iota
	colName
	colPrice
	colStock

	columnCount
)

// Header returns the header row for product output files.
func Header() []string {
	return []string{"id", "name", "price", "Stock Available"}
}

// Row renders one product in the delimited column layout.
func Row(p Product) []string {
	return []string{
		p.ID,
		p.Name,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		strconv.Itoa(p.StockAvailable),
	}
}
