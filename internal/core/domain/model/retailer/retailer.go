package retailer

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// Domain errors for retailer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a retailer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when attempting to create a retailer with a malformed email.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrRetailerIsNotConstructed is returned when using an improperly initialized Retailer.
	ErrRetailerIsNotConstructed = errors.New("Retailer must be created via NewRetailer constructor")
)

// Retailer represents a retail outlet that places orders with manufacturers.
// It is an aggregate root managing retailer identity and the contact address
// used for order notifications.
//
// Business rules:
//   - Retailer must have a valid UUID and a non-empty name
//   - The contact email must contain exactly one "@" with a non-empty local
//     part and domain; full RFC validation is left to the mail subsystem
type Retailer struct {
	// id uniquely identifies the retailer
	id kernel.UUID
	// name is the outlet's display name
	name string
	// email is the contact address for order notifications
	email string
	// guard ensures the retailer was properly constructed
	guard guard.ConstructorGuard
}

// NewRetailer creates a new Retailer with the specified parameters.
// This is the only way to create a valid Retailer instance; all parameters
// are validated and errors are aggregated.
func NewRetailer(id kernel.UUID, name, email string) (*Retailer, error) {
	retailer := &Retailer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		retailer.setID(id),
		retailer.setName(name),
		retailer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return retailer, nil
}

// RestoreRetailer reconstructs a Retailer aggregate from persistent storage.
func RestoreRetailer(id kernel.UUID, name, email string) (*Retailer, error) {
	return NewRetailer(id, name, email)
}

// Validate ensures the Retailer instance was properly constructed through NewRetailer.
func (r *Retailer) Validate() error {
	if r == nil {
		return ErrRetailerIsNotConstructed
	}
	return r.guard.Validate(ErrRetailerIsNotConstructed)
}

// IsEqual compares two retailers by their unique identifiers.
func (r *Retailer) IsEqual(other *Retailer) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the retailer's unique identifier.
func (r *Retailer) ID() kernel.UUID {
	return r.id
}

// Name returns the retailer's display name.
func (r *Retailer) Name() string {
	return r.name
}

// Email returns the retailer's notification address.
func (r *Retailer) Email() string {
	return r.email
}

func (r *Retailer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Retailer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Retailer) setEmail(email string) error {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return ErrEmailIsInvalid
	}
	r.email = email
	return nil
}
