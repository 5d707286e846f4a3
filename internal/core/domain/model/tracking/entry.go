package tracking

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not created through
	// the NewEntry or RestoreEntry factory methods.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")
)

// Entry is one immutable audit record of a status transition. Entries are
// created only by accepted transitions and are never updated or deleted:
// the ledger they form is append-only.
//
// The entry records the status the order held at the moment of transition,
// an optional human-readable message, an optional free-text details blob,
// and a server-assigned creation timestamp. Ordering between entries of the
// same order is by creation timestamp, with the append order authoritative.
type Entry struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID

	// orderID references the order the entry belongs to
	orderID kernel.UUID

	// status is the order status recorded by this entry
	status order.Status

	// message is an optional human-readable note for the transition
	message string

	// details is an optional free-text blob (e.g. validation output)
	details string

	// createdAt is the server-assigned creation time (UTC)
	createdAt time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates a ledger entry for an accepted transition with a fresh
// identity and the current server time. Message and details may be empty.
//
// Returns a validation error if the order reference or status is invalid.
func NewEntry(orderID kernel.UUID, status order.Status, message, details string) (*Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		status:        status,
		message:       message,
		details:       details,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs a ledger entry from persistent storage,
// preserving its identity and original creation time.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	message, details string,
	createdAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		status:        status,
		message:       message,
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry instance was properly constructed through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the order status recorded by this entry.
func (e *Entry) Status() order.Status {
	return e.status
}

// Message returns the optional human-readable note; empty if none was given.
func (e *Entry) Message() string {
	return e.message
}

// Details returns the optional free-text blob; empty if none was given.
func (e *Entry) Details() string {
	return e.details
}

// CreatedAt returns the server-assigned creation time.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
