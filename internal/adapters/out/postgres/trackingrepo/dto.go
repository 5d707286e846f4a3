// Package trackingrepo provides data transfer objects and mapping functions for
// the status tracking ledger. The ledger table is append-only: rows are inserted
// by accepted status transitions and never updated or deleted.
package trackingrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
// Indexed by order ID since the ledger is always read per order.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Message   string
	Details   string
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "tracking_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *tracking.Entry) EntryDTO {
	return EntryDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		Status:    int(entry.Status()),
		Message:   entry.Message(),
		Details:   entry.Details(),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*tracking.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEntry(
		id,
		orderID,
		order.Status(dto.Status),
		dto.Message,
		dto.Details,
		dto.CreatedAt,
	)
}
