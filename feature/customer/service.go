package customer

import (
	"strings"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/core/validate"

	"go.uber.org/zap"
)

// Service reconciles customer batches against the customer store.
type Service struct {
	files flatfile.Table
	sink  flatfile.Sink
	log   *zap.Logger
	store *Store
}

// NewService creates a new customer reconciliation service owning an empty
// store.
func NewService(files flatfile.Table, sink flatfile.Sink, log *zap.Logger) *Service {
	return &Service{
		files: files,
		sink:  sink,
		log:   log,
		store: NewStore(),
	}
}

// Load rebuilds the store from the origin snapshot. With validation enabled
// every row passes the full validator chain; without it the row shape is
// trusted, which is the mode used when customers are only load context for
// another entity's operation.
func (s *Service) Load(validateRows bool) error {
	s.store.Reset()

	rows, err := s.files.ReadAll(flatfile.CustomerOriginFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, validateRows)
	s.log.Info("customers loaded",
		zap.Int("count", s.store.Len()),
		zap.Bool("validated", validateRows))
	return nil
}

// Add applies the new-customer batch as a strict insert: any row whose ID,
// email, or phone number collides with a live customer is rejected.
func (s *Service) Add() error {
	rows, err := s.files.ReadAll(flatfile.CustomerNewFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, true)
	return nil
}

// Update overwrites name and email of the customer matching each row's
// phone number. The ID is immutable and left untouched. Rows whose phone
// number matches no live customer are collected and re-surfaced in their
// own output file rather than silently dropped.
func (s *Service) Update() error {
	rows, err := s.files.ReadAll(flatfile.CustomerEditFile)
	if err != nil {
		return err
	}

	var unmatched []Customer
	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) < columnCount {
			continue
		}
		line := i + 1

		id := values[colID]
		name := values[colName]
		email := values[colEmail]
		phone := values[colPhoneNumber]

		if err := ValidateName(name); err != nil {
			s.reject(line, err)
			continue
		}
		if err := ValidateEmail(email, s.store.EmailTakenByOther(email, phone)); err != nil {
			s.reject(line, err)
			continue
		}
		if err := ValidatePhoneNumber(phone, false); err != nil {
			s.reject(line, err)
			continue
		}

		existing, ok := s.store.Get(phone)
		if !ok {
			unmatched = append(unmatched, Customer{ID: id, Name: name, Email: email, PhoneNumber: phone})
			continue
		}

		existing.Name = name
		existing.Email = email
		s.store.Insert(existing)
	}

	if len(unmatched) > 0 {
		if err := s.writeUnmatched(unmatched); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes the customers named by the delete batch. A row with a
// single column is treated as a bare phone number; a full row contributes
// its phone column. Keys matching no live customer are logged as errors and
// leave the store unchanged.
func (s *Service) Delete() error {
	rows, err := s.files.ReadAll(flatfile.CustomerDeleteFile)
	if err != nil {
		return err
	}

	phones := make(map[string]struct{})
	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) == 0 {
			continue
		}
		line := i + 1

		phone := values[0]
		if len(values) >= columnCount {
			phone = values[colPhoneNumber]
		}
		phone = strings.TrimSpace(phone)
		if phone == "" {
			continue
		}

		if !s.store.HasPhone(phone) {
			s.reject(line, validate.Failf("phoneNumber",
				"Customer with phone number %s does not exist in the system.", phone))
			continue
		}
		phones[phone] = struct{}{}
	}

	for phone := range phones {
		s.store.Remove(phone)
	}

	s.log.Info("customers deleted", zap.Int("count", len(phones)))
	return nil
}

// Persist writes the current store to the customer output file, header
// first, rows sorted by phone number.
func (s *Service) Persist() error {
	customers := s.store.All()
	out := make([][]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, Row(c))
	}
	return s.files.WriteAll(flatfile.CustomerOutputFile, Header(), out)
}

// IDSet exposes a snapshot of live customer IDs for order validation.
func (s *Service) IDSet() map[string]struct{} {
	return s.store.IDSet()
}

// Store returns the service's store for read access in tests and reports.
func (s *Service) Store() *Store {
	return s.store
}

// applyRows runs the add path over a parsed batch: per row, fail-fast
// validation, then insert. A rejected row is logged and skipped; it never
// aborts the batch.
func (s *Service) applyRows(rows [][]string, validateRows bool) {
	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) < columnCount {
			continue
		}
		line := i + 1

		c := Customer{
			ID:          values[colID],
			Name:        values[colName],
			Email:       values[colEmail],
			PhoneNumber: values[colPhoneNumber],
		}

		if validateRows {
			if err := s.validateNew(c); err != nil {
				s.reject(line, err)
				continue
			}
		}

		s.store.Insert(c)
	}
}

func (s *Service) validateNew(c Customer) error {
	if err := ValidateID(c.ID, s.store.HasID(c.ID)); err != nil {
		return err
	}
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := ValidateEmail(c.Email, s.store.HasEmail(c.Email)); err != nil {
		return err
	}
	return ValidatePhoneNumber(c.PhoneNumber, s.store.HasPhone(c.PhoneNumber))
}

func (s *Service) writeUnmatched(unmatched []Customer) error {
	out := make([][]string, 0, len(unmatched))
	for _, c := range unmatched {
		out = append(out, Row(c))
	}
	s.log.Warn("update rows matched no customer", zap.Int("count", len(unmatched)))
	return s.files.WriteAll(flatfile.CustomerUnmatchedFile, Header(), out)
}

func (s *Service) reject(line int, err error) {
	s.sink.Log(validate.LineMessage(line, err))
	s.log.Warn("customer row rejected", zap.Int("line", line), zap.Error(err))
}
