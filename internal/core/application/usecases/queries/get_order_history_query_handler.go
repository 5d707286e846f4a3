package queries

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's tracking ledger from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	query, _ := NewGetOrderHistoryQuery(orderID)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order history: %v", err)
//	    return err
//	}
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for ledger queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's ledger entries.
// Entries are sorted most recent first, with the entry ID as a tie-break for
// entries written in the same instant. Returns errs.ErrObjectNotFound when
// the order does not exist.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderCount int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(id) FROM orders WHERE id = ?
	`, query.OrderID().String()).Scan(&orderCount).Error; err != nil {
		return nil, err
	}
	if orderCount == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			message,
			details,
			created_at
		FROM tracking_entries
		WHERE order_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var id uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&status,
			&entry.Message,
			&entry.Details,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entry.Status = order.Status(status)
		if statusErr := entry.Status.Validate(); statusErr != nil {
			return nil, statusErr
		}

		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
