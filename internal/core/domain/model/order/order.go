package order

import (
	"errors"
	"fmt"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a retailer order in the system. It is the aggregate root that
// manages the order lifecycle from upload through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid retailer reference
//   - Units must be positive (greater than 0)
//   - Status is always one of the 13 lifecycle values and transitions follow the status graph
//   - A trip ID, once assigned, is never reassigned for the life of the order
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// retailerID references the retailer the order belongs to
	retailerID kernel.UUID

	// units is the number of cases ordered (must be positive)
	units int

	// status represents the current state in the order lifecycle
	status Status

	// tripID is the opaque delivery trip identifier, empty until a trip is planned
	tripID string

	// tripStatus tracks physical trip progress, independent of status
	tripStatus TripStatus

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// statusSideEffects maps a status being entered to the effect applied to the
// order on entry. Effects are keyed by the target status, not the transition
// edge: trip metadata is a property of having reached a state, not of the
// path taken to reach it. Statuses without an entry have no side effect
// beyond the status assignment itself.
func statusSideEffects() map[Status]func(*Order) {
	return map[Status]func(*Order){
		TripPlanned: func(o *Order) {
			o.assignTrip()
		},
		InTransit: func(o *Order) {
			o.tripStatus = TripInTransit
		},
		Delivered: func(o *Order) {
			o.tripStatus = TripCompleted
		},
	}
}

// NewOrder creates a new Order instance with validation. Orders always start
// in the Uploaded status with no trip assigned.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - retailerID: Identifier of the retailer placing the order (must be valid UUID)
//   - units: Number of cases ordered (must be positive)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), retailerID, 120)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, retailerID kernel.UUID, units int) (*Order, error) {
	o := &Order{
		status:        Uploaded,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRetailerID(retailerID),
		o.setUnits(units),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which creates fresh orders in the Uploaded status, this
// constructor restores an order to its previously persisted state, including
// its lifecycle status and trip assignment.
//
// Returns a validation error if the identifier, retailer reference, units,
// or status is invalid.
func RestoreOrder(
	id kernel.UUID,
	retailerID kernel.UUID,
	units int,
	status Status,
	tripID string,
	tripStatus TripStatus,
) (*Order, error) {
	o := &Order{
		tripID:        tripID,
		tripStatus:    tripStatus,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRetailerID(retailerID),
		o.setUnits(units),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RetailerID returns the identifier of the retailer the order belongs to.
func (o *Order) RetailerID() kernel.UUID {
	return o.retailerID
}

// Units returns the number of cases ordered.
func (o *Order) Units() int {
	return o.units
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TripID returns the assigned delivery trip identifier.
// Returns an empty string if no trip has been planned.
func (o *Order) TripID() string {
	return o.tripID
}

// TripStatus returns the current trip sub-state.
// Returns TripNone if no trip has been planned.
func (o *Order) TripStatus() TripStatus {
	return o.tripStatus
}

// ChangeStatus moves the order to the given status.
//
// This method enforces the following business rules:
//   - The transition must be permitted by the status graph
//   - Entering TripPlanned assigns a trip ID (idempotently) and sets the
//     trip sub-state to PLANNED
//   - Entering InTransit or Delivered advances the trip sub-state
//
// Returns:
//   - nil on a successful transition
//   - *IllegalTransitionError carrying both statuses if the transition is
//     not allowed; the order is left unmodified
//   - a validation error if next is not a recognized status value
//
// Example:
//
//	if err := o.ChangeStatus(order.Processing); err != nil {
//	    var illegal *order.IllegalTransitionError
//	    if errors.As(err, &illegal) {
//	        // explain why the action is unavailable
//	    }
//	}
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if effect, ok := statusSideEffects()[newStatus]; ok {
		effect(o)
	}
	o.status = newStatus
	return nil
}

// assignTrip assigns a trip ID and marks the trip as planned.
// An already-assigned trip ID is never overwritten, so re-entering
// TripPlanned through a cancel/retry path keeps the original trip.
func (o *Order) assignTrip() {
	if o.tripID == "" {
		o.tripID = newTripID()
	}
	o.tripStatus = TripPlannedStatus
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRetailerID validates and sets the order's retailer reference.
// This is a private method used only during construction.
func (o *Order) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return err
	}
	o.retailerID = retailerID
	return nil
}

// setUnits validates and sets the ordered unit count.
// Units must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setUnits(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units is invalid", fmt.Errorf("%d is not greater than 0", units))
	}
	o.units = units
	return nil
}

// setStatus validates and sets the order's lifecycle status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
