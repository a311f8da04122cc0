package memory

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// storeParcelRegistry implements ParcelRegistry over the store's parcel map.
// The store keeps owned snapshots; callers never share memory with it.
type storeParcelRegistry struct {
	store *Store
}

// Add stores a new parcel under its identifier.
func (r *storeParcelRegistry) Add(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	if _, exists := r.store.parcels[id]; exists {
		return errs.NewObjectAlreadyExistsError("parcel", id.String())
	}

	r.store.parcels[id] = aggregate.Snapshot()
	r.store.order = append(r.store.order, id)
	return nil
}

// Update replaces the stored parcel with the given state.
// The parcel keeps its registration position.
func (r *storeParcelRegistry) Update(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	if _, exists := r.store.parcels[id]; !exists {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}

	r.store.parcels[id] = aggregate.Snapshot()
	return nil
}

// Get retrieves a parcel by identifier.
func (r *storeParcelRegistry) Get(_ context.Context, id parcel.ID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	stored, exists := r.store.parcels[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}

	return stored.Snapshot(), nil
}

// Remove deletes a parcel by identifier and returns it.
func (r *storeParcelRegistry) Remove(_ context.Context, id parcel.ID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	stored, exists := r.store.parcels[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("parcel", id.String())
	}

	delete(r.store.parcels, id)
	r.store.removeFromOrder(id)
	return stored, nil
}

// ReInsert restores a previously removed parcel at the end of the
// registration order. A no-op when the identifier is active again.
func (r *storeParcelRegistry) ReInsert(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	if _, exists := r.store.parcels[id]; exists {
		return nil
	}

	r.store.parcels[id] = aggregate.Snapshot()
	r.store.order = append(r.store.order, id)
	return nil
}

// GetAll retrieves every active parcel in registration order.
func (r *storeParcelRegistry) GetAll(_ context.Context) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(r.store.order))
	for _, id := range r.store.order {
		parcels = append(parcels, r.store.parcels[id].Snapshot())
	}

	return parcels, nil
}
