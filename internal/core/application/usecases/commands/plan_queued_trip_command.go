package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var ErrPlanQueuedTripCommandIsNotConstructed = errors.New(
	"PlanQueuedTripCommand must be created via NewPlanQueuedTripCommand constructor",
)

// PlanQueuedTripCommand triggers trip planning for the next queued order.
// This command represents the business operation of picking the first order
// in TRIP_QUEUED status and moving it to TRIP_PLANNED, which assigns its
// trip ID.
//
// Example:
//
//	cmd := NewPlanQueuedTripCommand()
//	handler := NewPlanQueuedTripCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    // nothing queued, not a fault
//	}
type PlanQueuedTripCommand struct {
	guard guard.ConstructorGuard
}

// NewPlanQueuedTripCommand creates a new command to trigger trip planning.
// This is a parameterless command that initiates planning for the next queued order.
func NewPlanQueuedTripCommand() PlanQueuedTripCommand {
	return PlanQueuedTripCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanQueuedTripCommandIsNotConstructed if validation fails.
func (c *PlanQueuedTripCommand) Validate() error {
	return c.guard.Validate(
		ErrPlanQueuedTripCommandIsNotConstructed,
	)
}
