package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Excludes orders in the terminal statuses DELIVERED, REJECTED and CANCELLED.
// Results are sorted by order ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			retailer_id,
			units,
			status,
			trip_id,
			trip_status
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY id
	`, order.Delivered, order.Rejected, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id, retailerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&retailerID,
			&orderResp.Units,
			&status,
			&orderResp.TripID,
			&orderResp.TripStatus,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(retailerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.RetailerID = ownerID

		orderResp.Status = order.Status(status)
		if statusErr := orderResp.Status.Validate(); statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
