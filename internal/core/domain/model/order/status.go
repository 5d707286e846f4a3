package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Uploaded ──> Processing ──> Validated ──┬──> TripQueued ──> TripPlanned ──┐
//	                │   ▲            ▲      │                                 │
//	                ▼   │            │      └────────> Submitted <────────────┘
//	          PendingInfo ──> InfoReceived                  │
//	                                                        ├──> Confirmed ──> InTransit ──> Delivered
//	                                                        └──> Rejected
//
// Cancellation is reachable from Uploaded, PendingInfo, TripQueued, and
// TripPlanned; Processing and Submitted can reject. Delivered, Rejected, and
// Cancelled are terminal with no outgoing transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Uploaded is the initial status when an order file has been received
	// but not yet processed.
	Uploaded

	// Processing indicates the order is being parsed and enriched.
	Processing

	// PendingInfo indicates processing stalled on missing information
	// that must be supplied by the retailer.
	PendingInfo

	// InfoReceived indicates the missing information has arrived and the
	// order can be reprocessed or validated directly.
	InfoReceived

	// Validated indicates the order passed all business checks and is
	// ready for trip planning or direct submission.
	Validated

	// TripQueued indicates the order is waiting for a delivery trip to
	// be planned.
	TripQueued

	// TripPlanned indicates a delivery trip has been planned for the order.
	// Entering this status assigns the order's trip ID.
	TripPlanned

	// Submitted indicates the order has been submitted to the manufacturer.
	Submitted

	// Confirmed indicates the manufacturer accepted the order.
	Confirmed

	// InTransit indicates the order is on its delivery trip.
	InTransit

	// Delivered indicates the order reached the retailer.
	// This is a terminal status with no further transitions allowed.
	Delivered

	// Rejected indicates the order was rejected during processing or by
	// the manufacturer. This is a terminal status.
	Rejected

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "UNKNOWN",
		Uploaded:     "UPLOADED",
		Processing:   "PROCESSING",
		PendingInfo:  "PENDING_INFO",
		InfoReceived: "INFO_RECEIVED",
		Validated:    "VALIDATED",
		TripQueued:   "TRIP_QUEUED",
		TripPlanned:  "TRIP_PLANNED",
		Submitted:    "SUBMITTED",
		Confirmed:    "CONFIRMED",
		InTransit:    "IN_TRANSIT",
		Delivered:    "DELIVERED",
		Rejected:     "REJECTED",
		Cancelled:    "CANCELLED",
	}
}

// getValidStatusTransitions returns the adjacency table of the status graph.
// It is the single source of truth for which transitions are legal; terminal
// statuses map to an empty set. Keeping the graph as data lets tests iterate
// it directly to check totality and terminal closure.
func getValidStatusTransitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Uploaded:     {Processing: true, Cancelled: true},
		Processing:   {PendingInfo: true, Validated: true, Rejected: true},
		PendingInfo:  {InfoReceived: true, Cancelled: true},
		InfoReceived: {Processing: true, Validated: true},
		Validated:    {TripQueued: true, Submitted: true},
		TripQueued:   {TripPlanned: true, Cancelled: true},
		TripPlanned:  {Submitted: true, Cancelled: true},
		Submitted:    {Confirmed: true, Rejected: true},
		Confirmed:    {InTransit: true},
		InTransit:    {Delivered: true},
		Delivered:    {},
		Rejected:     {},
		Cancelled:    {},
	}
}

// ParseStatus converts a wire representation (e.g. "TRIP_PLANNED") into a Status.
//
// Returns an UnknownStatusError if the string is not one of the 13 recognized
// status names. Parsing is strict: upper snake case only, no aliases. This is
// a parse-level failure, distinct from an illegal-transition failure.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, NewUnknownStatusError(s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the 13 lifecycle values. Unknown (0) and any other
// values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "UNKNOWN" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered, Rejected, and Cancelled are terminal; invalid statuses are not
// considered terminal.
func (s Status) IsTerminal() bool {
	next, ok := getValidStatusTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the status graph permits a direct
// transition from s to next.
//
// The function is pure and total over the full cross-product of statuses:
// every pair has a defined answer, self-transitions are illegal (no status
// maps to itself), and any pair involving an invalid status is illegal.
func (s Status) CanTransitionTo(next Status) bool {
	return getValidStatusTransitions()[s][next]
}

// TransitionTo validates the transition from s to next against the status graph.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, *IllegalTransitionError) carrying both statuses if the transition
//     is not allowed, including any transition out of a terminal status
//   - (0, error) if next is not a valid status value
//
// This method is used by Order.ChangeStatus() to enforce the workflow.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, NewIllegalTransitionError(s, next)
	}
	return next, nil
}
