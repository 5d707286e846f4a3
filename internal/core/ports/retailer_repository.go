package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/retailer"
)

// RetailerRepository defines the persistence contract for retailer aggregates.
type RetailerRepository interface {
	// Add persists a new retailer aggregate to storage.
	Add(ctx context.Context, aggregate *retailer.Retailer) error

	// Update persists changes to an existing retailer aggregate.
	Update(ctx context.Context, aggregate *retailer.Retailer) error

	// Get retrieves a retailer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error)
}
