package commands

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/domain/model/tracking"
)

// ChangeOrderStatusCommandHandler orchestrates one status-change request
// end to end: read the order's current status, validate the transition
// against the status graph, apply entering-state side effects, and append
// the tracking ledger entry.
//
// The order mutation and the ledger append happen in one unit of work, so a
// failure at any step leaves the stored status unchanged and the ledger
// without a new entry. Illegal transitions are returned as
// *order.IllegalTransitionError carrying both statuses; storage failures
// propagate unmodified for the caller to decide on retries.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Processing, "Parsing started", "")
//	entry, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var illegal *order.IllegalTransitionError
//	    if errors.As(err, &illegal) {
//	        // reject the request, showing illegal.From and illegal.To
//	    }
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory so the order update and ledger append share one
// transaction.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle processes the status-change command and returns the ledger entry
// created for the accepted transition.
//
// The order row is read with a FOR UPDATE lock inside the transaction, so
// two requests racing on the same order serialize: the second blocks until
// the first commits and is then validated against the committed status, not
// against the pre-image both requests started from.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*tracking.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Capture the pre-transition status before mutating; ChangeStatus
	// overwrites it.
	previous := ord.Status()

	if err = ord.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	entry, err := tracking.NewEntry(ord.ID(), ord.Status(), cmd.Message(), cmd.Details())
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", ord.ID().String(),
		"previous_status", previous.String(),
		"new_status", ord.Status().String(),
	)

	return entry, nil
}
