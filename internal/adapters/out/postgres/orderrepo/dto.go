// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing on
// status for the workflow queries that pick orders by lifecycle stage.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RetailerID uuid.UUID `gorm:"type:uuid;index"`
	Units      int
	Status     int    `gorm:"index"`
	TripID     string `gorm:"index"`
	TripStatus string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Trip columns stay empty until the order enters TRIP_PLANNED.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		RetailerID: aggregate.RetailerID().Bytes(),
		Units:      aggregate.Units(),
		Status:     int(aggregate.Status()),
		TripID:     aggregate.TripID(),
		TripStatus: string(aggregate.TripStatus()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including trip assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		retailerID,
		dto.Units,
		order.Status(dto.Status),
		dto.TripID,
		order.TripStatus(dto.TripStatus),
	)
}
