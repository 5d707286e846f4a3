package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUnitsAreInvalid = errors.New("units must be greater than 0")
)

// CreateOrderCommand represents a request to register a newly uploaded order.
// The order starts in the UPLOADED status with its first ledger entry written
// in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), retailerID, 240)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	retailerID kernel.UUID
	units      int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both identifiers are valid and units is positive.
// Returns an error if any validation fails.
func NewCreateOrderCommand(orderID, retailerID kernel.UUID, units int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRetailerID(retailerID),
		orderCommand.setUnits(units),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RetailerID returns the identifier of the retailer placing the order.
func (c CreateOrderCommand) RetailerID() kernel.UUID {
	return c.retailerID
}

// Units returns the number of cases ordered.
func (c CreateOrderCommand) Units() int {
	return c.units
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return err
	}

	c.retailerID = retailerID
	return nil
}

func (c *CreateOrderCommand) setUnits(units int) error {
	if units <= 0 {
		return ErrUnitsAreInvalid
	}

	c.units = units
	return nil
}
