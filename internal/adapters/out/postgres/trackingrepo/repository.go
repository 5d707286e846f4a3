package trackingrepo

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking ledger repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new ledger entry.
func (r *GormTrackingRepository) Add(ctx context.Context, entry *tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByOrder retrieves all ledger entries for the given order, most recent
// first. Entry ID breaks ties between entries written in the same instant.
func (r *GormTrackingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*tracking.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
