package order

import "sort"

// Store is the authoritative in-memory order set, keyed by order ID.
type Store struct {
	byID map[string]Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset clears the store.
func (s *Store) Reset() {
	s.byID = make(map[string]Order)
}

// Insert adds or replaces the order keyed by its ID.
func (s *Store) Insert(o Order) {
	s.byID[o.ID] = o
}

// Get returns the order with the given ID.
func (s *Store) Get(id string) (Order, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// Has reports whether an order with the given ID exists.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Remove deletes the order with the given ID, reporting whether it existed.
func (s *Store) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// Len returns the number of live orders.
func (s *Store) Len() int {
	return len(s.byID)
}

// All returns every order sorted ascending by ID.
func (s *Store) All() []Order {
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	orders := make([]Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, s.byID[id])
	}
	return orders
}
