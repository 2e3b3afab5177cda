package order

import (
	"strconv"
	"time"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/core/validate"
	"shop-reconciler/feature/customer"
	"shop-reconciler/feature/product"

	"go.uber.org/zap"
)

// Service reconciles order batches against the order store. Order rows
// reference customers and products, so every operation starts by taking
// read-only snapshots from the two sibling services; the orchestrator
// guarantees those services have finished loading before an order operation
// begins.
type Service struct {
	files     flatfile.Table
	sink      flatfile.Sink
	log       *zap.Logger
	customers *customer.Service
	products  *product.Service
	store     *Store

	pairDelimiter string
	pairSeparator string
}

// NewService creates a new order reconciliation service owning an empty
// store.
func NewService(files flatfile.Table, sink flatfile.Sink, log *zap.Logger,
	customers *customer.Service, products *product.Service, cfg flatfile.Config) *Service {
	return &Service{
		files:         files,
		sink:          sink,
		log:           log,
		customers:     customers,
		products:      products,
		store:         NewStore(),
		pairDelimiter: cfg.PairDelimiter,
		pairSeparator: cfg.PairSeparator,
	}
}

// Load rebuilds the store from the origin snapshot. A validated load runs
// the full cross-entity validator chain per row; an unvalidated load trusts
// the row shape and computes totals in non-strict mode, so a product
// missing from the snapshot contributes zero instead of rejecting the row.
func (s *Service) Load(validateRows bool) error {
	s.store.Reset()

	rows, err := s.files.ReadAll(flatfile.OrderOriginFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, validateRows, false)
	s.log.Info("orders loaded",
		zap.Int("count", s.store.Len()),
		zap.Bool("validated", validateRows))
	return nil
}

// Add applies the new-order batch. Every row is validated as a new order
// against the current customer and product snapshots; the total is computed
// from those snapshots at acceptance time and stored, so later product
// price changes do not retroactively alter it.
func (s *Service) Add() error {
	rows, err := s.files.ReadAll(flatfile.OrderNewFile)
	if err != nil {
		return err
	}

	s.applyRows(rows, true, true)
	return nil
}

// Update applies the edit batch to existing orders. The customer reference
// and order date are overwritten only when the incoming field is non-empty;
// quantities are always re-validated against the product snapshot and the
// total recomputed in strict mode. A row is applied all-or-nothing: any
// validation failure leaves the stored order untouched.
func (s *Service) Update() error {
	rows, err := s.files.ReadAll(flatfile.OrderEditFile)
	if err != nil {
		return err
	}

	customerIDs := s.customers.IDSet()
	products := s.products.Snapshot()

	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if len(values) < inputColumnCount {
			continue
		}
		line := i + 1

		id := values[colID]
		newCustomerID := values[colCustomerID]
		newQuantitiesStr := values[colProductQuantities]
		newDateStr := values[colOrderDate]

		if err := ValidateID(id, s.store.Has(id), true); err != nil {
			s.reject(line, err)
			continue
		}
		updated, _ := s.store.Get(id)

		if newCustomerID != "" {
			_, exists := customerIDs[newCustomerID]
			if err := ValidateCustomerID(newCustomerID, exists); err != nil {
				s.reject(line, err)
				continue
			}
			updated.CustomerID = newCustomerID
		}

		quantities, err := ParseQuantities(newQuantitiesStr, s.pairDelimiter, s.pairSeparator)
		if err != nil {
			s.reject(line, err)
			continue
		}
		if err := ValidateQuantities(quantities, products); err != nil {
			s.reject(line, err)
			continue
		}
		if err := ValidateStock(quantities, products); err != nil {
			s.reject(line, err)
			continue
		}

		if newDateStr != "" {
			if err := ValidateDate(newDateStr); err != nil {
				s.reject(line, err)
				continue
			}
			date, err := time.Parse(time.RFC3339Nano, newDateStr)
			if err != nil {
				s.reject(line, validate.Failf("orderDate", "Invalid Order Date format: %s", newDateStr))
				continue
			}
			updated.OrderDate = date
		}

		updated.ProductQuantities = quantities
		total, err := ComputeTotal(quantities, products, true)
		if err != nil {
			s.reject(line, err)
			continue
		}
		updated.TotalAmount = total

		s.store.Insert(updated)
	}

	return nil
}

// Delete removes the orders named by the delete batch; the key is the ID
// column, which is also the first column of a bare-key row. Absent IDs are
// logged as errors and leave the store unchanged.
func (s *Service) Delete() error {
	rows, err := s.files.ReadAll(flatfile.OrderDeleteFile)
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

	s.log.Info("orders deleted", zap.Int("count", len(ids)))
	return nil
}

// Persist writes the current store to the order output file, header first,
// rows sorted by ID.
func (s *Service) Persist() error {
	orders := s.store.All()
	out := make([][]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, Row(o, s.pairDelimiter, s.pairSeparator))
	}
	return s.files.WriteAll(flatfile.OrderOutputFile, Header(), out)
}

// All returns every live order sorted by ID for the search reports.
func (s *Service) All() []Order {
	return s.store.All()
}

// Store returns the service's store for read access in tests.
func (s *Service) Store() *Store {
	return s.store
}

// FormatRow renders one order with the service's configured delimiters.
func (s *Service) FormatRow(o Order) []string {
	return Row(o, s.pairDelimiter, s.pairSeparator)
}

func (s *Service) applyRows(rows [][]string, validateRows, recompute bool) {
	customerIDs := s.customers.IDSet()
	products := s.products.Snapshot()

	for i := 1; i < len(rows); i++ {
		line := i + 1
		o, err := s.orderFromRow(rows[i], validateRows, recompute, customerIDs, products)
		if err != nil {
			s.reject(line, err)
			continue
		}
		s.store.Insert(o)
	}
}

// orderFromRow parses and (optionally) validates one input row. Validators
// run in fixed order and the first failure rejects the row. With recompute
// set (the create path) the derived total is always computed fresh from the
// product snapshot; without it (the load path) a stored total is kept.
func (s *Service) orderFromRow(values []string, validateRows, recompute bool,
	customerIDs map[string]struct{}, products map[string]product.Product) (Order, error) {

	if len(values) < inputColumnCount {
		return Order{}, validate.Failf("row", "Invalid data length")
	}

	id := values[colID]
	customerID := values[colCustomerID]
	quantitiesStr := values[colProductQuantities]
	dateStr := values[colOrderDate]

	quantities, err := ParseQuantities(quantitiesStr, s.pairDelimiter, s.pairSeparator)
	if err != nil {
		return Order{}, err
	}

	if validateRows {
		if err := ValidateID(id, s.store.Has(id), false); err != nil {
			return Order{}, err
		}
		_, exists := customerIDs[customerID]
		if err := ValidateCustomerID(customerID, exists); err != nil {
			return Order{}, err
		}
		if err := ValidateQuantities(quantities, products); err != nil {
			return Order{}, err
		}
		if err := ValidateStock(quantities, products); err != nil {
			return Order{}, err
		}
		if err := ValidateDate(dateStr); err != nil {
			return Order{}, err
		}
	}

	date, err := time.Parse(time.RFC3339Nano, dateStr)
	if err != nil {
		return Order{}, validate.Failf("orderDate", "Invalid Order Date format: %s", dateStr)
	}

	// The stored total is a snapshot taken when the order was created or
	// last updated; reload keeps it, so price changes never retroactively
	// alter persisted totals. Created orders and loaded rows without the
	// derived column compute it from the current snapshot, where in the
	// informational case a missing product contributes zero.
	total, ok := storedTotal(values)
	if recompute || !ok {
		total, err = ComputeTotal(quantities, products, recompute)
		if err != nil {
			return Order{}, err
		}
	}

	return Order{
		ID:                id,
		CustomerID:        customerID,
		ProductQuantities: quantities,
		OrderDate:         date,
		TotalAmount:       total,
	}, nil
}

// storedTotal reads the derived-total column of a full-width row.
func storedTotal(values []string) (float64, bool) {
	if len(values) <= colTotalAmount {
		return 0, false
	}
	total, err := strconv.ParseFloat(values[colTotalAmount], 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

func (s *Service) reject(line int, err error) {
	s.sink.Log(validate.LineMessage(line, err))
	s.log.Warn("order row rejected", zap.Int("line", line), zap.Error(err))
}
