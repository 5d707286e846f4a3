package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the status tracking
// ledger. The ledger is append-only: entries are added by accepted transitions
// and never updated or deleted, so the interface deliberately offers no
// mutation beyond Add.
type TrackingRepository interface {
	// Add appends a new ledger entry. A persistence failure must propagate
	// to the caller: an unlogged transition breaks the audit invariant.
	Add(ctx context.Context, entry *tracking.Entry) error

	// GetByOrder retrieves all ledger entries for the given order,
	// most recent first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Entry, error)
}
