package batch

import (
	"fmt"
	"sort"
)

// Entity names the record type an operation targets.
type Entity int

const (
	EntityAll Entity = iota
	EntityProduct
	EntityCustomer
	EntityOrder
	EntitySearch
)

// Action names what an operation does to its entity.
type Action int

const (
	ActionLoad Action = iota
	ActionAdd
	ActionUpdate
	ActionDelete
	ActionTopProducts
	ActionOrdersByProduct
)

// Code is one valid (entity, action) combination. The set is closed: codes
// exist only in the lookup table below, so an invalid combination cannot be
// constructed from user input.
type Code struct {
	Entity Entity
	Action Action

	name string
}

func (c Code) String() string {
	return c.name
}

// codes maps the user-facing <entity-group>.<action> strings to their
// closed Code values.
var codes = map[string]Code{
	"all.load":                 {EntityAll, ActionLoad, "all.load"},
	"product.add":              {EntityProduct, ActionAdd, "product.add"},
	"product.update":           {EntityProduct, ActionUpdate, "product.update"},
	"product.delete":           {EntityProduct, ActionDelete, "product.delete"},
	"customer.add":             {EntityCustomer, ActionAdd, "customer.add"},
	"customer.update":          {EntityCustomer, ActionUpdate, "customer.update"},
	"customer.delete":          {EntityCustomer, ActionDelete, "customer.delete"},
	"order.add":                {EntityOrder, ActionAdd, "order.add"},
	"order.update":             {EntityOrder, ActionUpdate, "order.update"},
	"order.delete":             {EntityOrder, ActionDelete, "order.delete"},
	"search.top-products":      {EntitySearch, ActionTopProducts, "search.top-products"},
	"search.orders-by-product": {EntitySearch, ActionOrdersByProduct, "search.orders-by-product"},
}

// ParseCode resolves an operation-code string. An unrecognized code is an
// error and causes no state change.
func ParseCode(s string) (Code, error) {
	code, ok := codes[s]
	if !ok {
		return Code{}, fmt.Errorf("invalid operation code: %q", s)
	}
	return code, nil
}

// Codes returns every valid operation-code string, sorted.
func Codes() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
