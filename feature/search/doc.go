// Package search implements the two read-only reports: the top-N
// most-ordered products and the orders-by-product-ID lookup.
package search
