package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRegistry defines the storage contract for active parcel aggregates.
// The registry indexes parcels by their caller-assigned identifier and keeps
// registration order for traversal.
type ParcelRegistry interface {
	// Add stores a new parcel aggregate.
	// The parcel must be valid and its identifier must not belong to an
	// active parcel; returns an ObjectAlreadyExistsError otherwise.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// Returns an ObjectNotFoundError when the identifier is not active.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its identifier.
	// Returns an ObjectNotFoundError when the identifier is not active.
	Get(ctx context.Context, id parcel.ID) (*parcel.Parcel, error)

	// Remove deletes a parcel aggregate by its identifier and returns the
	// removed parcel. Returns an ObjectNotFoundError when the identifier is
	// not active.
	Remove(ctx context.Context, id parcel.ID) (*parcel.Parcel, error)

	// ReInsert restores a previously removed parcel.
	// When the identifier has been registered again in the meantime the
	// current parcel wins and the call is a silent no-op.
	ReInsert(ctx context.Context, aggregate *parcel.Parcel) error

	// GetAll retrieves every active parcel in registration order.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
