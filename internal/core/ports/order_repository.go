package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and trip assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInStatus retrieves the first order currently in the given status.
	// Used by workflow jobs to find orders awaiting the next step.
	GetFirstInStatus(ctx context.Context, status order.Status) (*order.Order, error)
}
