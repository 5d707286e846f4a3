package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Carries an optional human-readable message and free-text
// details that are recorded on the resulting tracking ledger entry.
//
// The proposed status is validated at construction time: an unrecognized
// status value is rejected here, before any order state is consulted. Whether
// the transition itself is legal is decided by the handler against the
// order's current status.
//
// Example:
//
//	status, err := order.ParseStatus("PROCESSING")
//	if err != nil {
//	    return err // unknown status kind
//	}
//	cmd, err := NewChangeOrderStatusCommand(orderID, status, "Parsing started", "")
//	if err != nil {
//	    return err
//	}
//	entry, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	message string
	details string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID is valid and the proposed status is one of the
// recognized lifecycle values. Message and details may be empty.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	message, details string,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	statusCommand.message = message
	statusCommand.details = details

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the proposed lifecycle status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Message returns the optional note recorded on the ledger entry.
func (c ChangeOrderStatusCommand) Message() string {
	return c.message
}

// Details returns the optional free-text blob recorded on the ledger entry.
func (c ChangeOrderStatusCommand) Details() string {
	return c.details
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
