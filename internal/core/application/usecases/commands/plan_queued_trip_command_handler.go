package commands

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrNoOrderFound is returned when no order is waiting in the queried status.
	// This is an expected business scenario, not a fault.
	ErrNoOrderFound = errors.New("no order found")
)

// PlanQueuedTripCommandHandler advances the next TRIP_QUEUED order to
// TRIP_PLANNED. Entering TRIP_PLANNED assigns the order's trip ID, so this
// handler is what turns queued orders into planned delivery trips.
//
// The status change goes through the same domain transition path as any
// other: the graph is consulted, the side-effect table fires, and exactly
// one ledger entry is appended in the same transaction as the order update.
//
// Example:
//
//	handler := NewPlanQueuedTripCommandHandler(uowFactory)
//	cmd := NewPlanQueuedTripCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No queued orders")
//	case err != nil:
//	    log.Printf("Trip planning failed: %v", err)
//	}
type PlanQueuedTripCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlanQueuedTripCommandHandler creates a handler for trip planning operations.
// Requires an OrderUoWFactory for coordinating the order update and ledger append.
func NewPlanQueuedTripCommandHandler(uowFactory OrderUoWFactory) PlanQueuedTripCommandHandler {
	return PlanQueuedTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip planning command.
// Retrieves the first order in TRIP_QUEUED status and transitions it to
// TRIP_PLANNED within a single transaction. Returns ErrNoOrderFound when the
// queue is empty.
func (h PlanQueuedTripCommandHandler) Handle(ctx context.Context, command PlanQueuedTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.GetFirstInStatus(ctx, order.TripQueued)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if err = ord.ChangeStatus(order.TripPlanned); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(ord.ID(), ord.Status(), "Delivery trip planned", "trip_id="+ord.TripID())
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
