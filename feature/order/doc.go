// Package order reconciles order batches against an ID-keyed store.
//
// Orders are the cross-entity path: every mutation validates its customer
// reference against a snapshot of live customer IDs and its product
// quantities against a snapshot of the product store, and recomputes the
// derived total from that same snapshot. The snapshots are taken once per
// batch, after the dependency loads have joined, so stock and reference
// checks observe a consistent view for the whole run.
package order
