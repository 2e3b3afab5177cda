// Package batch orchestrates one reconciliation operation per invocation.
//
// An operation is selected by a two-part code (<entity-group>.<action>)
// resolved through a closed lookup table. The orchestrator walks a fixed
// cycle (Idle, LoadingDependencies, ApplyingOperation, Persisting, Idle),
// loading only the entity stores the operation reads, running the parallel
// loads under a bounded errgroup, and joining the group before any
// operation that reads cross-entity state.
//
// Error discipline follows two tiers: row-level validation failures are
// handled inside the services (logged to the error sink, row skipped,
// batch continues), while structural failures (missing input file,
// unwritable destination) abort the run and surface as the returned error.
package batch
