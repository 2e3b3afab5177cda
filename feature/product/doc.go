// Package product reconciles product batches against an ID-keyed store and
// exposes the price/stock snapshots that order validation depends on.
package product
