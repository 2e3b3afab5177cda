package product

import "sort"

// Store is the authoritative in-memory product set, keyed by product ID.
// It is owned by exactly one Service; order validation reads copies taken
// through Snapshot, never the live map.
type Store struct {
	byID map[string]Product
}

// NewStore creates an empty product store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset clears the store.
func (s *Store) Reset() {
	s.byID = make(map[string]Product)
}

// Insert adds or replaces the product keyed by its ID.
func (s *Store) Insert(p Product) {
	s.byID[p.ID] = p
}

// Get returns the product with the given ID.
func (s *Store) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Has reports whether a product with the given ID exists.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Remove deletes the product with the given ID, reporting whether it existed.
func (s *Store) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// Len returns the number of live products.
func (s *Store) Len() int {
	return len(s.byID)
}

// Snapshot returns a copy of the product map. Order validation and total
// computation work against this snapshot for the duration of one batch.
func (s *Store) Snapshot() map[string]Product {
	snap := make(map[string]Product, len(s.byID))
	for id, p := range s.byID {
		snap[id] = p
	}
	return snap
}

// All returns every product sorted ascending by ID.
func (s *Store) All() []Product {
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	products := make([]Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, s.byID[id])
	}
	return products
}
