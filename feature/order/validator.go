package order

import (
	"regexp"
	"strings"

	"shop-reconciler/core/validate"
	"shop-reconciler/feature/product"
)

// datePattern is a strict ISO-8601 timestamp with mandatory fractional
// seconds and an explicit UTC offset, e.g. 2024-05-01T10:15:30.000+07:00.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,9}[+-]\d{2}:\d{2}$`)

// ValidateID checks that the ID is non-empty and that its existence matches
// the operation: an add rejects a live ID, an update or delete requires one.
func ValidateID(id string, exists, isUpdate bool) error {
	if strings.TrimSpace(id) == "" {
		return validate.Failf("id", "Order ID cannot be empty.")
	}
	if isUpdate {
		if !exists {
			return validate.Failf("id", "Order ID does not exist for update: %s", id)
		}
		return nil
	}
	if exists {
		return validate.Failf("id", "Order ID already exists: %s", id)
	}
	return nil
}

// ValidateCustomerID requires the referenced customer to be live in the
// customer-ID snapshot taken for this batch.
func ValidateCustomerID(customerID string, exists bool) error {
	if !exists {
		return validate.Failf("customerId", "Customer ID does not exist: %s", customerID)
	}
	return nil
}

// ValidateQuantities requires a non-empty quantity map whose every product
// ID is live in the product snapshot and whose every quantity is positive.
func ValidateQuantities(quantities map[string]int, products map[string]product.Product) error {
	if len(quantities) == 0 {
		return validate.Failf("productQuantities", "Invalid product quantities.")
	}

	for id, quantity := range quantities {
		if _, ok := products[id]; !ok {
			return validate.Failf("productQuantities", "Invalid product ID: %s", id)
		}
		if quantity <= 0 {
			return validate.Failf("productQuantities", "Product quantity must be greater than 0.")
		}
	}

	return nil
}

// ValidateStock rejects the order in full if any referenced product has
// less stock available than the ordered quantity.
func ValidateStock(quantities map[string]int, products map[string]product.Product) error {
	for id, ordered := range quantities {
		p, ok := products[id]
		if !ok {
			return validate.Failf("productQuantities", "Invalid stock for product ID: %s", id)
		}
		if ordered > p.StockAvailable {
			return validate.Failf("productQuantities",
				"Ordered quantity exceeds available stock for product ID: %s", id)
		}
	}
	return nil
}

// ValidateDate checks the strict ISO-8601 pattern.
func ValidateDate(orderDate string) error {
	if !datePattern.MatchString(orderDate) {
		return validate.Failf("orderDate", "Invalid Order Date format: %s", orderDate)
	}
	return nil
}
