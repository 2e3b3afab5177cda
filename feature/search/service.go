package search

import (
	"sort"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/feature/order"
	"shop-reconciler/feature/product"

	"go.uber.org/zap"
)

// topCount is the number of products the ranking report emits.
const topCount = 3

// Service produces the read-only reports over the loaded product and order
// stores. It never mutates either store.
type Service struct {
	files    flatfile.Table
	sink     flatfile.Sink
	log      *zap.Logger
	products *product.Service
	orders   *order.Service
}

// NewService creates a new search service over the given stores.
func NewService(files flatfile.Table, sink flatfile.Sink, log *zap.Logger,
	products *product.Service, orders *order.Service) *Service {
	return &Service{
		files:    files,
		sink:     sink,
		log:      log,
		products: products,
		orders:   orders,
	}
}

// TopProducts writes the three most-ordered products to the product output
// file. Ranking metric is distinct-order appearance count: an order
// contributes one point to each product it references, regardless of the
// ordered quantity. Ties break ascending by product ID so the report is
// deterministic.
func (s *Service) TopProducts() error {
	counts := make(map[string]int)
	for _, o := range s.orders.All() {
		for id := range o.ProductQuantities {
			counts[id]++
		}
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > topCount {
		ids = ids[:topCount]
	}

	snapshot := s.products.Snapshot()
	out := make([][]string, 0, len(ids))
	for _, id := range ids {
		p, ok := snapshot[id]
		if !ok {
			// Referenced by orders but absent from the product store.
			s.log.Warn("top product missing from store", zap.String("product_id", id))
			continue
		}
		out = append(out, product.Row(p))
	}

	s.log.Info("top products computed", zap.Int("count", len(out)))
	return s.files.WriteAll(flatfile.ProductOutputFile, product.Header(), out)
}

// OrdersByProduct reads the target product IDs from the search input file
// and writes every order referencing at least one of them to the order
// output file. Zero matches is an error-sink condition; no file is written.
func (s *Service) OrdersByProduct() error {
	rows, err := s.files.ReadAll(flatfile.SearchProductIDFile)
	if err != nil {
		return err
	}

	targets := make(map[string]struct{})
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		targets[rows[i][0]] = struct{}{}
	}

	var matched []order.Order
	for _, o := range s.orders.All() {
		for id := range o.ProductQuantities {
			if _, ok := targets[id]; ok {
				matched = append(matched, o)
				break
			}
		}
	}

	if len(matched) == 0 {
		s.sink.Log("Error while finding orders by product IDs: No orders found for the given product IDs")
		s.log.Warn("no orders matched the searched product IDs", zap.Int("targets", len(targets)))
		return nil
	}

	out := make([][]string, 0, len(matched))
	for _, o := range matched {
		out = append(out, s.orders.FormatRow(o))
	}

	s.log.Info("orders matched", zap.Int("count", len(matched)))
	return s.files.WriteAll(flatfile.OrderOutputFile, order.Header(), out)
}
