package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/feature/customer"
	"shop-reconciler/feature/order"
	"shop-reconciler/feature/product"
	"shop-reconciler/feature/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	root         string
	orchestrator *Orchestrator
	orders       *order.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	cfg := flatfile.Config{Delimiter: ",", PairDelimiter: ":", PairSeparator: ";"}
	files := flatfile.NewDir(root, cfg)
	sink := flatfile.NewErrorLog(root)
	log := zap.NewNop()

	customers := customer.NewService(files, sink, log)
	products := product.NewService(files, sink, log)
	orders := order.NewService(files, sink, log, customers, products, cfg)
	searchSvc := search.NewService(files, sink, log, products, orders)

	return &harness{
		root:         root,
		orchestrator: New(log, sink, customers, products, orders, searchSvc, Config{Workers: 3}),
		orders:       orders,
	}
}

func (h *harness) write(t *testing.T, name string, lines ...string) {
	t.Helper()
	path := filepath.Join(h.root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func (h *harness) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.root, name))
	require.NoError(t, err)
	return string(data)
}

func (h *harness) writeOrigins(t *testing.T) {
	t.Helper()
	h.write(t, flatfile.CustomerOriginFile, "id,name,email,phoneNumber",
		"C001,Alice,alice@example.com,0123456789")
	h.write(t, flatfile.ProductOriginFile, "id,name,price,Stock Available",
		"P001,Widget,5.0,10",
		"P002,Gadget,3.0,10")
	h.write(t, flatfile.OrderOriginFile, "id,customerId,productQuantities,orderDate,totalAmount",
		"O1,C001,P001:2;P002:1,2024-05-01T10:15:30.000+07:00,13")
}

func mustCode(t *testing.T, s string) Code {
	t.Helper()
	code, err := ParseCode(s)
	require.NoError(t, err)
	return code
}

func TestOrchestrator_AllLoad(t *testing.T) {
	h := newHarness(t)
	h.writeOrigins(t)
	// The bad phone number is a row-level failure: logged and skipped,
	// never fatal to the run.
	h.write(t, flatfile.CustomerOriginFile, "id,name,email,phoneNumber",
		"C001,Alice,alice@example.com,0123456789",
		"C002,Bob,bob@example.com,123")

	require.NoError(t, h.orchestrator.Run(context.Background(), mustCode(t, "all.load")))
	assert.Equal(t, PhaseIdle, h.orchestrator.Phase())

	assert.Contains(t, h.read(t, flatfile.CustomerOutputFile), "C001,Alice")
	assert.NotContains(t, h.read(t, flatfile.CustomerOutputFile), "C002")
	assert.Contains(t, h.read(t, flatfile.ProductOutputFile), "P001,Widget")
	assert.Contains(t, h.read(t, flatfile.OrderOutputFile), "O1,C001")
	assert.Contains(t, h.read(t, flatfile.ErrorFile),
		"Error on line 3: Invalid or duplicated phone number: 123")
}

func TestOrchestrator_OrderAdd(t *testing.T) {
	h := newHarness(t)
	h.writeOrigins(t)
	h.write(t, flatfile.OrderNewFile, "id,customerId,productQuantities,orderDate",
		"O2,C001,P002:3,2024-06-01T09:00:00.000+07:00",
		"O3,C001,P001:99,2024-06-01T09:00:00.000+07:00")

	require.NoError(t, h.orchestrator.Run(context.Background(), mustCode(t, "order.add")))

	out := h.read(t, flatfile.OrderOutputFile)
	assert.Contains(t, out, "O2,C001,P002:3,2024-06-01T09:00:00.000+07:00,9")
	assert.NotContains(t, out, "O3")
	assert.Contains(t, h.read(t, flatfile.ErrorFile), "Error on line 3:")
}

func TestOrchestrator_OrderDelete_LoadsOrdersOnly(t *testing.T) {
	h := newHarness(t)
	// Only the order files exist. The delete plan must not read the
	// customer or product origins.
	h.write(t, flatfile.OrderOriginFile, "id,customerId,productQuantities,orderDate,totalAmount",
		"O1,C001,P001:2,2024-05-01T10:15:30.000+07:00,10",
		"O2,C001,P002:1,2024-05-02T10:15:30.000+07:00,3")
	h.write(t, flatfile.OrderDeleteFile, "id",
		"O1")

	require.NoError(t, h.orchestrator.Run(context.Background(), mustCode(t, "order.delete")))

	out := h.read(t, flatfile.OrderOutputFile)
	assert.NotContains(t, out, "O1,")
	assert.Contains(t, out, "O2,C001")
}

func TestOrchestrator_SearchTopProducts(t *testing.T) {
	h := newHarness(t)
	h.writeOrigins(t)

	require.NoError(t, h.orchestrator.Run(context.Background(), mustCode(t, "search.top-products")))

	out := h.read(t, flatfile.ProductOutputFile)
	assert.Contains(t, out, "P001,Widget")
	assert.Contains(t, out, "P002,Gadget")
}

func TestOrchestrator_MissingOriginIsFatal(t *testing.T) {
	h := newHarness(t)
	// No input files at all: the load phase fails structurally.
	err := h.orchestrator.Run(context.Background(), mustCode(t, "all.load"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load phase failed")
	assert.Equal(t, PhaseIdle, h.orchestrator.Phase())
	assert.Contains(t, h.read(t, flatfile.ErrorFile), "load phase failed")
}

func TestOrchestrator_MissingBatchFileIsFatal(t *testing.T) {
	h := newHarness(t)
	h.writeOrigins(t)

	err := h.orchestrator.Run(context.Background(), mustCode(t, "product.update"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation product.update failed")
	assert.Equal(t, PhaseIdle, h.orchestrator.Phase())
}
