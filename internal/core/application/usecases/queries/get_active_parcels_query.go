// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetActiveParcelsQueryIsNotConstructed = errors.New(
		"GetActiveParcelsQuery must be created via NewGetActiveParcelsQuery constructor",
	)
)

// GetActiveParcelsQuery retrieves every parcel currently held in the registry.
// Returns parcels in registration order for monitoring and display.
//
// Example:
//
//	query := NewGetActiveParcelsQuery()
//	handler := NewGetActiveParcelsQueryHandler(uowFactory)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve parcels: %w", err)
//	}
//
//	for _, p := range parcels {
//	    fmt.Printf("Parcel %s for %s (%.2f kg)\n", p.ID, p.Recipient, p.Weight)
//	}
type GetActiveParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveParcelsQuery creates a query to retrieve all active parcels.
// This is a parameterless query that fetches the complete registry contents.
func NewGetActiveParcelsQuery() GetActiveParcelsQuery {
	return GetActiveParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveParcelsQueryIsNotConstructed if validation fails.
func (q GetActiveParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveParcelsQueryIsNotConstructed)
}

// GetActiveParcelsQueryResponse represents one active parcel in the read model.
// Contains the full shipping form plus the mutable weight.
type GetActiveParcelsQueryResponse struct {
	ID        parcel.ID
	Sender    string
	Recipient string
	Address   string
	Weight    float64
	Priority  parcel.Priority
}
