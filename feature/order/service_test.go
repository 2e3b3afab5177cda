package order

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/feature/customer"
	"shop-reconciler/feature/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	orderHeader    = "id,customerId,productQuantities,orderDate,totalAmount"
	customerHeader = "id,name,email,phoneNumber"
	productHeader  = "id,name,price,Stock Available"
)

func writeInput(t *testing.T, root, name string, lines ...string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func readOutput(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(data)
}

// newTestService wires an order service against loaded customer and product
// stores, mirroring the orchestrator's guarantee that dependency loads have
// joined before order processing starts.
func newTestService(t *testing.T, productRows ...string) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	cfg := flatfile.Config{Delimiter: ",", PairDelimiter: ":", PairSeparator: ";"}
	files := flatfile.NewDir(root, cfg)
	sink := flatfile.NewErrorLog(root)
	log := zap.NewNop()

	writeInput(t, root, flatfile.CustomerOriginFile, customerHeader,
		"C001,John Doe,john@x.com,0123456789")
	if len(productRows) == 0 {
		productRows = []string{
			"P001,Widget,5.0,10",
			"P002,Gadget,3.0,10",
		}
	}
	writeInput(t, root, flatfile.ProductOriginFile,
		append([]string{productHeader}, productRows...)...)
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader)

	customers := customer.NewService(files, sink, log)
	products := product.NewService(files, sink, log)
	require.NoError(t, customers.Load(false))
	require.NoError(t, products.Load(false))

	svc := NewService(files, sink, log, customers, products, cfg)
	require.NoError(t, svc.Load(false))
	return svc, root
}

func TestService_Add_ComputesTotal(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderNewFile, orderHeader,
		"O1,C001,P001:2;P002:1,2024-05-01T10:15:30.000+07:00")

	require.NoError(t, svc.Add())

	got, ok := svc.Store().Get("O1")
	require.True(t, ok)
	assert.Equal(t, 13.0, got.TotalAmount)
	assert.Equal(t, "C001", got.CustomerID)
	assert.Equal(t, map[string]int{"P001": 2, "P002": 1}, got.ProductQuantities)
}

func TestService_Add_RejectsStockExceeded(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderNewFile, orderHeader,
		"O1,C001,P001:12,2024-05-01T10:15:30.000+07:00")

	require.NoError(t, svc.Add())

	// The order is rejected in full: no partial creation.
	assert.Equal(t, 0, svc.Store().Len())
	errs := readOutput(t, root, flatfile.ErrorFile)
	assert.Contains(t, errs, "Ordered quantity exceeds available stock for product ID: P001")
}

func TestService_Add_RejectsUnknownCustomer(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderNewFile, orderHeader,
		"O1,C404,P001:1,2024-05-01T10:15:30.000+07:00")

	require.NoError(t, svc.Add())

	assert.Equal(t, 0, svc.Store().Len())
	errs := readOutput(t, root, flatfile.ErrorFile)
	assert.Contains(t, errs, "Customer ID does not exist: C404")
}

func TestService_Add_RejectsMalformedDate(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderNewFile, orderHeader,
		"O1,C001,P001:1,2024-05-01T10:15:30+07:00")

	require.NoError(t, svc.Add())

	assert.Equal(t, 0, svc.Store().Len())
	errs := readOutput(t, root, flatfile.ErrorFile)
	assert.Contains(t, errs, "Invalid Order Date format")
}

func TestService_Load_KeepsStoredTotal(t *testing.T) {
	// The persisted total is a snapshot from order-creation time; current
	// product prices must not rewrite it on reload of unmodified rows.
	svc, root := newTestService(t, "P001,Widget,99.0,10")
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader,
		"O1,C001,P001:2,2024-05-01T10:15:30.000+07:00,10")

	require.NoError(t, svc.Load(true))

	got, ok := svc.Store().Get("O1")
	require.True(t, ok)
	assert.Equal(t, 10.0, got.TotalAmount)
}

func TestService_Load_Idempotent(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader,
		"O1,C001,P001:2;P002:1,2024-05-01T10:15:30.000+07:00,13",
		"O2,C001,P002:1,2024-06-01T08:00:00.000+00:00,3")

	require.NoError(t, svc.Load(true))
	first := svc.Store().All()

	require.NoError(t, svc.Load(true))
	second := svc.Store().All()

	assert.Equal(t, first, second)
}

func TestService_Update(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader,
		"O1,C001,P001:2,2024-05-01T10:15:30.000+07:00,10")
	require.NoError(t, svc.Load(false))

	// Empty customerId and date columns leave those fields untouched.
	writeInput(t, root, flatfile.OrderEditFile, orderHeader,
		"O1,,P001:1;P002:2,",
		"O99,C001,P001:1,2024-05-01T10:15:30.000+07:00")

	require.NoError(t, svc.Update())

	got, ok := svc.Store().Get("O1")
	require.True(t, ok)
	assert.Equal(t, "C001", got.CustomerID)
	assert.Equal(t, map[string]int{"P001": 1, "P002": 2}, got.ProductQuantities)
	assert.Equal(t, 11.0, got.TotalAmount, "total recomputed from the current snapshot")

	wantDate, err := time.Parse(time.RFC3339Nano, "2024-05-01T10:15:30.000+07:00")
	require.NoError(t, err)
	assert.True(t, got.OrderDate.Equal(wantDate))

	errs := readOutput(t, root, flatfile.ErrorFile)
	assert.Contains(t, errs, "Order ID does not exist for update: O99")
}

func TestService_Update_RejectionLeavesOrderUntouched(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader,
		"O1,C001,P001:2,2024-05-01T10:15:30.000+07:00,10")
	require.NoError(t, svc.Load(false))

	// Valid new customer column, but the stock check fails: the row is
	// rejected as a whole and no field may leak into the store.
	writeInput(t, root, flatfile.OrderEditFile, orderHeader,
		"O1,C001,P001:999,2024-06-01T00:00:00.000+00:00")

	require.NoError(t, svc.Update())

	got, _ := svc.Store().Get("O1")
	assert.Equal(t, map[string]int{"P001": 2}, got.ProductQuantities)
	assert.Equal(t, 10.0, got.TotalAmount)
}

func TestService_Delete(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderOriginFile, orderHeader,
		"O1,C001,P001:2,2024-05-01T10:15:30.000+07:00,10",
		"O2,C001,P002:1,2024-05-02T10:15:30.000+07:00,3")
	require.NoError(t, svc.Load(false))

	writeInput(t, root, flatfile.OrderDeleteFile, "id",
		"O2",
		"O404")

	require.NoError(t, svc.Delete())

	assert.Equal(t, 1, svc.Store().Len())
	assert.True(t, svc.Store().Has("O1"))

	errs := readOutput(t, root, flatfile.ErrorFile)
	assert.Contains(t, errs, "Order ID does not exist for update: O404")
}

func TestService_Persist_DeterministicRows(t *testing.T) {
	svc, root := newTestService(t)
	writeInput(t, root, flatfile.OrderNewFile, orderHeader,
		"O2,C001,P002:1,2024-05-02T10:15:30.000+07:00",
		"O1,C001,P001:2;P002:1,2024-05-01T10:15:30.000+07:00")

	require.NoError(t, svc.Add())
	require.NoError(t, svc.Persist())

	out := readOutput(t, root, flatfile.OrderOutputFile)
	assert.Equal(t, orderHeader+"\n"+
		"O1,C001,P001:2;P002:1,2024-05-01T10:15:30.000+07:00,13\n"+
		"O2,C001,P002:1,2024-05-02T10:15:30.000+07:00,3\n", out)
}
