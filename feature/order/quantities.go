package order

import (
	"strconv"
	"strings"

	"shop-reconciler/core/validate"
)

// ParseQuantities decodes a productQuantities field: productId/quantity
// pairs joined by the pair delimiter, pairs joined by the pair separator
// (e.g. "P001:2;P002:1"). Pairs that do not split into exactly two parts
// are skipped; a non-integer quantity rejects the whole field.
func ParseQuantities(field, pairDelimiter, pairSeparator string) (map[string]int, error) {
	quantities := make(map[string]int)

	for _, pair := range strings.Split(field, pairSeparator) {
		parts := strings.Split(pair, pairDelimiter)
		if len(parts) != 2 {
			continue
		}
		quantity, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, validate.Failf("productQuantities",
				"Invalid quantity for product ID %s: %s", parts[0], parts[1])
		}
		quantities[parts[0]] = quantity
	}

	return quantities, nil
}
