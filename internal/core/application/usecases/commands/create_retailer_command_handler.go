package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/retailer"
)

// CreateRetailerCommandHandler handles the business logic for retailer registration.
//
// Example:
//
//	handler := NewCreateRetailerCommandHandler(uowFactory)
//	cmd, _ := NewCreateRetailerCommand(kernel.NewUUID(), "Corner Mart", "orders@cornermart.example")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("retailer registration failed: %w", err)
//	}
type CreateRetailerCommandHandler struct {
	uowFactory RetailerUoWFactory
}

// NewCreateRetailerCommandHandler creates a handler for retailer registration.
// Requires a RetailerUoWFactory for transactional persistence.
func NewCreateRetailerCommandHandler(uowFactory RetailerUoWFactory) CreateRetailerCommandHandler {
	return CreateRetailerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retailer registration command.
// Constructs the retailer aggregate and persists it within a transaction.
func (h CreateRetailerCommandHandler) Handle(ctx context.Context, cmd CreateRetailerCommand) error {
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

	r, err := retailer.NewRetailer(cmd.RetailerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return err
	}

	if err = uow.RetailerRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
