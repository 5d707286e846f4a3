// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders still moving through the workflow.
// An order is active until it reaches DELIVERED, REJECTED or CANCELLED.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders in flight\n", len(orders))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches every non-terminal order.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents an in-flight order in the read model.
// Trip fields are zero-valued until the order enters TRIP_PLANNED.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	RetailerID kernel.UUID
	Units      int
	Status     order.Status
	TripID     string
	TripStatus order.TripStatus
}
