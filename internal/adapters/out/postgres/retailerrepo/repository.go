package retailerrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/retailer"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRetailerRepository implements RetailerRepository using GORM.
type GormRetailerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRetailerRepository creates a new GORM retailer repository.
func NewGormRetailerRepository(db *gorm.DB, tracker aggregateTracker) *GormRetailerRepository {
	return &GormRetailerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new retailer to the database.
func (r *GormRetailerRepository) Add(ctx context.Context, aggregate *retailer.Retailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing retailer to the database.
func (r *GormRetailerRepository) Update(ctx context.Context, aggregate *retailer.Retailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RetailerDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a retailer by ID.
func (r *GormRetailerRepository) Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RetailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("retailer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
