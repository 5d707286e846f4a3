package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in the UPLOADED status and writes the order's first
// tracking ledger entry in the same transaction, so every order's history
// starts with the status it was created in.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), retailerID, 48)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory: intake reads the retailer registry and writes both
// the order and its first ledger entry transactionally.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Verifies the referenced retailer exists, creates the order in UPLOADED
// status, and appends the initial ledger entry. Uses a transaction to ensure
// the order and its history entry are persisted together or not at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RetailerRepository().Get(ctx, cmd.RetailerID()); err != nil {
		return err
	}

	ord, err := order.NewOrder(cmd.OrderID(), cmd.RetailerID(), cmd.Units())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(ord.ID(), ord.Status(), "Order uploaded", "")
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
