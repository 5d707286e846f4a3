package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRetailersQueryHandler retrieves all retailer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllRetailersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRetailersQueryHandler creates a handler for retailer retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllRetailersQueryHandler(db *gorm.DB) GetAllRetailersQueryHandler {
	return GetAllRetailersQueryHandler{db: db}
}

// Handle executes the query to retrieve all retailers.
// Returns a slice of retailer read models sorted by name.
func (h GetAllRetailersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRetailersQuery,
) ([]GetAllRetailersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	retailers := make([]GetAllRetailersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM retailers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var retailerResp GetAllRetailersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&retailerResp.Name,
			&retailerResp.Email,
		)
		if err != nil {
			return nil, err
		}

		retailerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		retailerResp.ID = retailerID

		retailers = append(retailers, retailerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return retailers, nil
}
