package product

import (
	"strconv"
	"strings"

	"shop-reconciler/core/validate"
)

// ValidateID checks that the ID is non-empty and that its existence matches
// the operation: an add rejects a live ID, an update requires one.
func ValidateID(id string, exists, isUpdate bool) error {
	if strings.TrimSpace(id) == "" {
		return validate.Failf("id", "Product ID cannot be empty.")
	}
	if isUpdate {
		if !exists {
			return validate.Failf("id", "Product ID does not exist for update: %s", id)
		}
		return nil
	}
	if exists {
		return validate.Failf("id", "Product ID already exists: %s", id)
	}
	return nil
}

// ValidateName checks that the name is non-empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validate.Failf("name", "Product Name cannot be empty.")
	}
	return nil
}

// ValidatePrice parses the price column and requires a non-negative number.
func ValidatePrice(priceStr string) (float64, error) {
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return 0, validate.Failf("price", "Price must be a valid number.")
	}
	if price < 0 {
		return 0, validate.Failf("price", "Price must be greater than or equal to 0.")
	}
	return price, nil
}

// ValidateStock parses the stock column and requires a non-negative integer.
func ValidateStock(stockStr string) (int, error) {
	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		return 0, validate.Failf("stockAvailable", "StockAvailable must be a valid integer.")
	}
	if stock < 0 {
		return 0, validate.Failf("stockAvailable", "StockAvailable must be greater than or equal to 0.")
	}
	return stock, nil
}
