package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"
)

// ErrParcelNotFound is returned when an id-addressed command targets a parcel
// that is not active in the registry. Shared by the weight-update, loading and
// delivery handlers.
var ErrParcelNotFound = errors.New("parcel not found")

// UpdateParcelWeightCommandHandler handles the business logic for weight changes.
// Records the pre-update state in the history before persisting the change, so
// the update can be undone.
//
// Example:
//
//	handler := NewUpdateParcelWeightCommandHandler(uowFactory)
//	parcelID, _ := parcel.NewID(7)
//	cmd, _ := NewUpdateParcelWeightCommand(parcelID, 2.4)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrParcelNotFound) {
//	    // No active parcel with that id
//	    return
//	}
type UpdateParcelWeightCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateParcelWeightCommandHandler creates a handler for weight update operations.
// Requires a TrackingUoWFactory for transactional access to the registry and the history.
func NewUpdateParcelWeightCommandHandler(uowFactory TrackingUoWFactory) UpdateParcelWeightCommandHandler {
	return UpdateParcelWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weight update command.
// Fetches the parcel, captures its pre-update state as an Updated history entry,
// applies the new weight and persists the change, all within one transaction.
// Returns ErrParcelNotFound when the identifier is not active.
func (h *UpdateParcelWeightCommandHandler) Handle(ctx context.Context, cmd UpdateParcelWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()
	history := uow.HistoryStack()

	trackedParcel, err := registry.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	// The entry snapshots the parcel before the weight changes.
	entry, err := tracking.NewUpdatedEntry(trackedParcel)
	if err != nil {
		return err
	}

	if err = trackedParcel.ChangeWeight(cmd.Weight()); err != nil {
		return err
	}

	if err = registry.Update(ctx, trackedParcel); err != nil {
		return err
	}

	if err = history.Push(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
