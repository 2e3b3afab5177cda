package order

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Order is one order record, keyed by ID. TotalAmount is derived from the
// product snapshot at mutation time and never supplied by input rows.
type Order struct {
	ID                string
	CustomerID        string
	ProductQuantities map[string]int
	OrderDate         time.Time
	TotalAmount       float64
}

// Column positions in the delimited order layout. The totalAmount column is
// present in output files and ignored on input.
const (
	colID = iota
	colCustomerID
	colProductQuantities
	colOrderDate
	colTotalAmount

	columnCount
)

// inputColumnCount is the minimum number of columns an input row must
// carry; totalAmount is derived, so rows without it are complete.
const inputColumnCount = columnCount - 1

// Header returns the header row for order output files.
func Header() []string {
	return []string{"id", "customerId", "productQuantities", "orderDate", "totalAmount"}
}

// dateLayout renders order dates with mandatory fractional seconds and an
// explicit numeric offset, matching the strict pattern the validator
// enforces so persisted output stays loadable.
const dateLayout = "2006-01-02T15:04:05.000-07:00"

// Row renders one order in the delimited column layout. Quantities are
// sorted by product ID so repeated persists of the same store are
// byte-identical.
func Row(o Order, pairDelimiter, pairSeparator string) []string {
	ids := make([]string, 0, len(o.ProductQuantities))
	for id := range o.ProductQuantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pairs := make([]string, 0, len(ids))
	for _, id := range ids {
		pairs = append(pairs, id+pairDelimiter+strconv.Itoa(o.ProductQuantities[id]))
	}

	return []string{
		o.ID,
		o.CustomerID,
		strings.Join(pairs, pairSeparator),
		o.OrderDate.Format(dateLayout),
		strconv.FormatFloat(o.TotalAmount, 'f', -1, 64),
	}
}
