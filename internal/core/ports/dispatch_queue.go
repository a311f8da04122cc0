package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
)

// DispatchQueue defines the contract for the priority-ordered loading queue.
// Parcels are queued as point-in-time snapshots, so later weight updates to
// the live aggregate do not show through queued entries.
type DispatchQueue interface {
	// Enqueue adds a snapshot of the parcel to the queue.
	// The parcel must be valid.
	Enqueue(ctx context.Context, aggregate *parcel.Parcel) error

	// DequeueNext removes and returns the most urgent queued parcel.
	// Urgency follows the priority scale, where Highest is served first.
	// Parcels sharing a priority level leave the queue in the order they
	// entered it.
	//
	// Returns a CollectionIsEmptyError when the queue holds no parcels.
	//
	// Example:
	//   next, err := queue.DequeueNext(ctx)
	//   if errors.Is(err, errs.ErrCollectionIsEmpty) {
	//       // Nothing staged for dispatch
	//       return
	//   }
	//   if err != nil {
	//       return fmt.Errorf("failed to dequeue next parcel: %w", err)
	//   }
	//   fmt.Printf("Dispatching: %s\n", next.ID())
	DequeueNext(ctx context.Context) (*parcel.Parcel, error)
}
