package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the tracking ledger of a single order.
// Entries come back most recent first, so the first element is always the
// order's current status.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order history: %w", err)
//	}
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a specific order's ledger.
// Returns an error if the order ID is invalid.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose ledger is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderHistoryQueryResponse represents one ledger entry in the read model.
type GetOrderHistoryQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	Message   string
	Details   string
	CreatedAt time.Time
}
