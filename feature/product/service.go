package product

import (
	"strconv"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/core/validate"

	"go.uber.org/zap"
)

// Service reconciles product batches against the product store.
type Service struct {
	files flatfile.Table
	sink  flatfile.Sink
	log   *zap.Logger
	store *Store
}

// NewService creates a new product reconciliation service owning an empty
// store.
func NewService(files flatfile.Table, sink flatfile.Sink, log *zap.Logger) *Service {
	return &Service{
		files: files,
		sink:  sink,
		log:   log,
		store: NewStore(),
	}
}

// Load rebuilds the store from the origin snapshot. An unvalidated load
// trusts the row shape and coerces numeric columns leniently; it is used
// when products are only load context for another entity's operation.
func (s *Service) Load(validateRows bool) error {
	s.store.Reset()

	rows, err := s.files.ReadAll(flatfile.ProductOriginFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, validateRows, false)
	s.log.Info("products loaded",
		zap.Int("count", s.store.Len()),
		zap.Bool("validated", validateRows))
	return nil
}

// Add applies the new-product batch as a strict insert: a row targeting a
// live product ID is rejected.
func (s *Service) Add() error {
	rows, err := s.files.ReadAll(flatfile.ProductNewFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, true, false)
	return nil
}

// Update overwrites name, price, and stock of the product matching each
// row's ID. A row targeting an absent ID is a row-level error.
func (s *Service) Update() error {
	rows, err := s.files.ReadAll(flatfile.ProductEditFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, true, true)
	return nil
}

// Delete removes the products named by the delete batch. A single-column
// row is a bare product ID; a full row contributes its ID column. Absent
// IDs are logged as errors and leave the store unchanged.
func (s *Service) Delete() error {
	rows, err := s.files.ReadAll(flatfile.ProductDeleteFile)
	if err != nil {
		return err
	}

	ids := make(map[string]struct{})
	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) == 0 {
			continue
		}
		line := i + 1

		id := values[colID]
		if err := ValidateID(id, s.store.Has(id), true); err != nil {
			s.reject(line, err)
			continue
		}
		ids[id] = struct{}{}
	}

	for id := range ids {
		s.store.Remove(id)
	}

	s.log.Info("products deleted", zap.Int("count", len(ids)))
	return nil
}

// Persist writes the current store to the product output file, header
// first, rows sorted by ID.
func (s *Service) Persist() error {
	products := s.store.All()
	out := make([][]string, 0, len(products))
	for _, p := range products {
		out = append(out, Row(p))
	}
	return s.files.WriteAll(flatfile.ProductOutputFile, Header(), out)
}

// Snapshot exposes a copy of the product map for order validation and
// total computation.
func (s *Service) Snapshot() map[string]Product {
	return s.store.Snapshot()
}

// Store returns the service's store for read access in tests and reports.
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) applyRows(rows [][]string, validateRows, isUpdate bool) {
	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) < columnCount {
			continue
		}
		line := i + 1

		id := values[colID]
		name := values[colName]
		priceStr := values[colPrice]
		stockStr := values[colStock]

		if !validateRows {
			// Trusted snapshot rows: lenient numeric coercion.
			price, _ := strconv.ParseFloat(priceStr, 64)
			stock, _ := strconv.Atoi(stockStr)
			s.store.Insert(Product{ID: id, Name: name, Price: price, StockAvailable: stock})
			continue
		}

		if err := ValidateID(id, s.store.Has(id), isUpdate); err != nil {
			s.reject(line, err)
			continue
		}
		if err := ValidateName(name); err != nil {
			s.reject(line, err)
			continue
		}
		price, err := ValidatePrice(priceStr)
		if err != nil {
			s.reject(line, err)
			continue
		}
		stock, err := ValidateStock(stockStr)
		if err != nil {
			s.reject(line, err)
			continue
		}

		s.store.Insert(Product{ID: id, Name: name, Price: price, StockAvailable: stock})
	}
}

func (s *Service) reject(line int, err error) {
	s.sink.Log(validate.LineMessage(line, err))
	s.log.Warn("product row rejected", zap.Int("line", line), zap.Error(err))
}
