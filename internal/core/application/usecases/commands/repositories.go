// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking ledger within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// RetailerRepoFactory provides access to the retailer repository within a transaction.
	RetailerRepoFactory interface {
		RetailerRepository() ports.RetailerRepository
	}

	// OrderUoW manages transactions for order workflow operations.
	// Status changes always touch the order row and the tracking ledger
	// together, so the two repositories share one transaction boundary:
	// either both writes land or neither does.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RetailerUoW manages transactions for retailer-only operations.
	RetailerUoW interface {
		TxManager
		RetailerRepoFactory
	}

	// RetailerUoWFactory creates new retailer unit of work instances.
	RetailerUoWFactory interface {
		Create() RetailerUoW
	}

	// UoW manages transactions across all aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	UoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
		RetailerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
