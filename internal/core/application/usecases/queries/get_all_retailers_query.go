package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetAllRetailersQueryIsNotConstructed = errors.New(
		"GetAllRetailersQuery must be created via NewGetAllRetailersQuery constructor",
	)
)

// GetAllRetailersQuery retrieves information about all registered retailers.
//
// Example:
//
//	query := NewGetAllRetailersQuery()
//	handler := NewGetAllRetailersQueryHandler(db)
//
//	retailers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve retailers: %w", err)
//	}
type GetAllRetailersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRetailersQuery creates a query to retrieve all retailers.
// This is a parameterless query that fetches the complete registry.
func NewGetAllRetailersQuery() GetAllRetailersQuery {
	return GetAllRetailersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRetailersQueryIsNotConstructed if validation fails.
func (q GetAllRetailersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRetailersQueryIsNotConstructed)
}

// GetAllRetailersQueryResponse represents retailer information in the read model.
type GetAllRetailersQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
