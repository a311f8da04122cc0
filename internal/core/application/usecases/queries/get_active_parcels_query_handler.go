package queries

import (
	"context"
)

// GetActiveParcelsQueryHandler retrieves all active parcels from the registry.
// Runs inside a read transaction so the listing is a consistent snapshot.
//
// Example:
//
//	handler := NewGetActiveParcelsQueryHandler(uowFactory)
//	query := NewGetActiveParcelsQuery()
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get parcels: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d active parcels\n", len(parcels))
type GetActiveParcelsQueryHandler struct {
	uowFactory ListingUoWFactory
}

// NewGetActiveParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a ListingUoWFactory for transactional access to the registry.
func NewGetActiveParcelsQueryHandler(uowFactory ListingUoWFactory) GetActiveParcelsQueryHandler {
	return GetActiveParcelsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query to retrieve all active parcels.
// Returns a slice of parcel read models in registration order.
func (h GetActiveParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveParcelsQuery,
) ([]GetActiveParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()

	active, err := registry.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	parcels := make([]GetActiveParcelsQueryResponse, 0, len(active))
	for _, p := range active {
		parcels = append(parcels, GetActiveParcelsQueryResponse{
			ID:        p.ID(),
			Sender:    p.Sender(),
			Recipient: p.Recipient(),
			Address:   p.Address(),
			Weight:    p.Weight(),
			Priority:  p.Priority(),
		})
	}

	return parcels, nil
}
