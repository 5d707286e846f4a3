package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateRetailerCommandIsNotConstructed = errors.New(
		"CreateRetailerCommand must be created via NewCreateRetailerCommand constructor",
	)
	ErrRetailerNameIsRequired  = errors.New("retailer name is required")
	ErrRetailerEmailIsRequired = errors.New("retailer email is required")
)

// CreateRetailerCommand represents a request to register a new retailer.
//
// Example:
//
//	cmd, err := NewCreateRetailerCommand(kernel.NewUUID(), "Corner Mart", "orders@cornermart.example")
//	if err != nil {
//	    return fmt.Errorf("invalid retailer data: %w", err)
//	}
//
//	handler := NewCreateRetailerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create retailer: %w", err)
//	}
type CreateRetailerCommand struct { //nolint:recvcheck //using for validation
	retailerID kernel.UUID
	name       string
	email      string

	guard guard.ConstructorGuard
}

// NewCreateRetailerCommand creates a command to register a new retailer.
// Validates that the ID is valid and name/email are present; full email
// validation happens in the domain constructor.
func NewCreateRetailerCommand(retailerID kernel.UUID, name, email string) (CreateRetailerCommand, error) {
	retailerCommand := CreateRetailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		retailerCommand.setRetailerID(retailerID),
		retailerCommand.setName(name),
		retailerCommand.setEmail(email),
	); err != nil {
		return CreateRetailerCommand{}, err
	}

	return retailerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRetailerCommandIsNotConstructed if validation fails.
func (c CreateRetailerCommand) Validate() error {
	return c.guard.Validate(ErrCreateRetailerCommandIsNotConstructed)
}

// RetailerID returns the unique identifier for the retailer.
func (c CreateRetailerCommand) RetailerID() kernel.UUID {
	return c.retailerID
}

// Name returns the retailer's display name.
func (c CreateRetailerCommand) Name() string {
	return c.name
}

// Email returns the retailer's notification address.
func (c CreateRetailerCommand) Email() string {
	return c.email
}

func (c *CreateRetailerCommand) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return err
	}

	c.retailerID = retailerID
	return nil
}

func (c *CreateRetailerCommand) setName(name string) error {
	if name == "" {
		return ErrRetailerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRetailerCommand) setEmail(email string) error {
	if email == "" {
		return ErrRetailerEmailIsRequired
	}

	c.email = email
	return nil
}
