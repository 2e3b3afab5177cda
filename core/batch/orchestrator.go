package batch

import (
	"context"
	"fmt"

	"shop-reconciler/core/flatfile"
	"shop-reconciler/feature/customer"
	"shop-reconciler/feature/order"
	"shop-reconciler/feature/product"
	"shop-reconciler/feature/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Phase is the orchestrator's position in its run cycle.
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseLoadingDependencies Phase = "loading_dependencies"
	PhaseApplyingOperation   Phase = "applying_operation"
	PhasePersisting          Phase = "persisting"
)

// Orchestrator executes exactly one batch operation per invocation: it
// loads the entity stores the operation needs as context, applies the
// operation through the owning reconciliation service, and persists the
// mutated store(s). Loads within the dependency phase run in parallel
// under a bounded group and are joined before any cross-entity read.
type Orchestrator struct {
	log       *zap.Logger
	sink      flatfile.Sink
	customers *customer.Service
	products  *product.Service
	orders    *order.Service
	search    *search.Service
	workers   int

	phase Phase
}

// New creates an orchestrator over the four services.
func New(log *zap.Logger, sink flatfile.Sink, customers *customer.Service,
	products *product.Service, orders *order.Service, searchSvc *search.Service,
	cfg Config) *Orchestrator {
	return &Orchestrator{
		log:       log,
		sink:      sink,
		customers: customers,
		products:  products,
		orders:    orders,
		search:    searchSvc,
		workers:   cfg.WorkerCount(),
		phase:     PhaseIdle,
	}
}

// Phase returns the orchestrator's current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Run executes one operation. Row-level failures inside the operation are
// logged and skipped by the services; any error returned here is
// structural (missing input file, unwritable destination) and fatal to the
// whole operation.
func (o *Orchestrator) Run(ctx context.Context, code Code) error {
	log := o.log.With(
		zap.String("run_id", uuid.NewString()),
		zap.Stringer("operation", code),
	)

	o.setPhase(log, PhaseLoadingDependencies)
	if err := o.loadDependencies(ctx, code); err != nil {
		return o.fatal(log, fmt.Errorf("load phase failed: %w", err))
	}

	o.setPhase(log, PhaseApplyingOperation)
	persist, err := o.apply(code)
	if err != nil {
		return o.fatal(log, fmt.Errorf("operation %s failed: %w", code, err))
	}

	o.setPhase(log, PhasePersisting)
	for _, p := range persist {
		if err := p(); err != nil {
			return o.fatal(log, fmt.Errorf("persist phase failed: %w", err))
		}
	}

	o.setPhase(log, PhaseIdle)
	log.Info("operation completed")
	return nil
}

// loadDependencies populates whichever stores the operation reads. The
// parallel loads are independent: each store is owned by its own service,
// so no locking is needed, but the group must be joined before order
// processing because order validation is unsafe against a partially loaded
// customer or product store.
func (o *Orchestrator) loadDependencies(ctx context.Context, code Code) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	switch code.Entity {
	case EntityAll:
		// Validated full reload: customers and products first, joined,
		// then orders so cross-entity checks see complete stores.
		g.Go(func() error { return o.customers.Load(true) })
		g.Go(func() error { return o.products.Load(true) })
		if err := g.Wait(); err != nil {
			return err
		}
		return o.orders.Load(true)

	case EntityProduct:
		return o.products.Load(false)

	case EntityCustomer:
		return o.customers.Load(false)

	case EntityOrder:
		if code.Action == ActionDelete {
			// Deletes key on order IDs only; no cross-entity context.
			return o.orders.Load(false)
		}
		// The order load reads the sibling stores for total computation,
		// so it must run after the join, not inside the group.
		g.Go(func() error { return o.customers.Load(false) })
		g.Go(func() error { return o.products.Load(false) })
		if err := g.Wait(); err != nil {
			return err
		}
		return o.orders.Load(false)

	case EntitySearch:
		g.Go(func() error { return o.products.Load(false) })
		g.Go(func() error { return o.orders.Load(false) })
		return g.Wait()

	default:
		return fmt.Errorf("no dependency plan for entity %d", code.Entity)
	}
}

// apply dispatches the operation and returns the persist steps for the
// mutated stores. The search reports write their own output during apply
// and persist nothing.
func (o *Orchestrator) apply(code Code) ([]func() error, error) {
	switch {
	case code.Entity == EntityAll && code.Action == ActionLoad:
		return []func() error{o.products.Persist, o.customers.Persist, o.orders.Persist}, nil

	case code.Entity == EntityProduct:
		if err := o.runEntityAction(code.Action, o.products.Add, o.products.Update, o.products.Delete); err != nil {
			return nil, err
		}
		return []func() error{o.products.Persist}, nil

	case code.Entity == EntityCustomer:
		if err := o.runEntityAction(code.Action, o.customers.Add, o.customers.Update, o.customers.Delete); err != nil {
			return nil, err
		}
		return []func() error{o.customers.Persist}, nil

	case code.Entity == EntityOrder:
		if err := o.runEntityAction(code.Action, o.orders.Add, o.orders.Update, o.orders.Delete); err != nil {
			return nil, err
		}
		return []func() error{o.orders.Persist}, nil

	case code.Entity == EntitySearch && code.Action == ActionTopProducts:
		return nil, o.search.TopProducts()

	case code.Entity == EntitySearch && code.Action == ActionOrdersByProduct:
		return nil, o.search.OrdersByProduct()

	default:
		return nil, fmt.Errorf("no operation bound to code %s", code)
	}
}

func (o *Orchestrator) runEntityAction(action Action, add, update, del func() error) error {
	switch action {
	case ActionAdd:
		return add()
	case ActionUpdate:
		return update()
	case ActionDelete:
		return del()
	default:
		return fmt.Errorf("unsupported entity action %d", action)
	}
}

// fatal records a structural failure in the error sink and resets the
// phase. Structural errors terminate the run; they are never retried.
func (o *Orchestrator) fatal(log *zap.Logger, err error) error {
	o.sink.Log(err.Error())
	log.Error("operation aborted", zap.Error(err))
	o.phase = PhaseIdle
	return err
}

func (o *Orchestrator) setPhase(log *zap.Logger, phase Phase) {
	o.phase = phase
	log.Debug("phase transition", zap.String("phase", string(phase)))
}
