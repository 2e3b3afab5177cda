package order

import (
	"shop-reconciler/core/validate"
	"shop-reconciler/feature/product"
)

// ComputeTotal sums price × quantity over the quantity map against the
// product snapshot. In strict mode (validated mutations) a product missing
// from the snapshot is a hard error; in non-strict mode (read-only total
// recomputation) it contributes zero. The two modes stay on one explicit
// flag so callers cannot conflate them.
func ComputeTotal(quantities map[string]int, products map[string]product.Product, strict bool) (float64, error) {
	var total float64

	for id, quantity := range quantities {
		p, ok := products[id]
		if !ok {
			if strict {
				return 0, validate.Failf("productQuantities", "Product not found for ID: %s", id)
			}
			continue
		}
		total += p.Price * float64(quantity)
	}

	return total, nil
}
