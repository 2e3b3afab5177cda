package customer

import "sort"

// Store is the authoritative in-memory customer set, keyed by phone number.
// It maintains secondary index sets of customer IDs and emails so that
// uniqueness checks and existence lookups stay O(1). The store is owned by
// exactly one Service; callers never receive the underlying maps.
type Store struct {
	byPhone map[string]Customer
	ids     map[string]struct{}
	emails  map[string]struct{}
}

// NewStore creates an empty customer store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset clears the store and both secondary indexes.
func (s *Store) Reset() {
	s.byPhone = make(map[string]Customer)
	s.ids = make(map[string]struct{})
	s.emails = make(map[string]struct{})
}

// Insert adds or replaces the customer keyed by its phone number and keeps
// the ID and email indexes in step. Replacing a record frees the previous
// email before registering the new one.
func (s *Store) Insert(c Customer) {
	if prev, ok := s.byPhone[c.PhoneNumber]; ok {
		delete(s.ids, prev.ID)
		delete(s.emails, prev.Email)
	}
	s.byPhone[c.PhoneNumber] = c
	s.ids[c.ID] = struct{}{}
	s.emails[c.Email] = struct{}{}
}

// Get returns the customer with the given phone number.
func (s *Store) Get(phone string) (Customer, bool) {
	c, ok := s.byPhone[phone]
	return c, ok
}

// Remove deletes the customer with the given phone number and frees its ID
// and email for reuse by later adds. It reports whether a record existed.
func (s *Store) Remove(phone string) bool {
	c, ok := s.byPhone[phone]
	if !ok {
		return false
	}
	delete(s.byPhone, phone)
	delete(s.ids, c.ID)
	delete(s.emails, c.Email)
	return true
}

// HasPhone reports whether a customer with the given phone number exists.
func (s *Store) HasPhone(phone string) bool {
	_, ok := s.byPhone[phone]
	return ok
}

// HasID reports whether any live customer carries the given ID.
func (s *Store) HasID(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// HasEmail reports whether any live customer carries the given email.
func (s *Store) HasEmail(email string) bool {
	_, ok := s.emails[email]
	return ok
}

// EmailTakenByOther reports whether the email belongs to a customer other
// than the one keyed by the given phone number.
func (s *Store) EmailTakenByOther(email, phone string) bool {
	if !s.HasEmail(email) {
		return false
	}
	if own, ok := s.byPhone[phone]; ok && own.Email == email {
		return false
	}
	return true
}

// Len returns the number of live customers.
func (s *Store) Len() int {
	return len(s.byPhone)
}

// IDSet returns a copy of the live customer-ID set. Order validation reads
// this snapshot; mutations after the copy do not leak into it.
func (s *Store) IDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		ids[id] = struct{}{}
	}
	return ids
}

// All returns every customer sorted ascending by phone number.
func (s *Store) All() []Customer {
	phones := make([]string, 0, len(s.byPhone))
	for phone := range s.byPhone {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	customers := make([]Customer, 0, len(phones))
	for _, phone := range phones {
		customers = append(customers, s.byPhone[phone])
	}
	return customers
}
