// Package retailerrepo provides data transfer objects and mapping functions
// for retailer persistence.
package retailerrepo

import (
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/retailer"

	"github.com/google/uuid"
)

// RetailerDTO represents the database structure for persisting retailer aggregates.
type RetailerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

// TableName specifies the database table name for retailer entities.
func (RetailerDTO) TableName() string {
	return "retailers"
}

// fromDomain converts a retailer domain aggregate to its database representation.
func fromDomain(aggregate *retailer.Retailer) RetailerDTO {
	return RetailerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

// toDomain converts a database DTO to a retailer domain aggregate.
func toDomain(dto RetailerDTO) (*retailer.Retailer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return retailer.RestoreRetailer(id, dto.Name, dto.Email)
}
