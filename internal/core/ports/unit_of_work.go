package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// A status transition must mutate the order row and append its ledger entry
// within the same unit of work so that no transition is half-applied: either
// both writes land or neither does.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// TrackingRepository returns a TrackingRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	TrackingRepository() TrackingRepository

	// RetailerRepository returns a RetailerRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	RetailerRepository() RetailerRepository
}
