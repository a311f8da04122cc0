package commands

import (
	"context"
	"errors"

	"parceltrack/internal/pkg/errs"
)

// LoadParcelCommandHandler handles the business logic for staging parcels.
// Copies the parcel's current state onto the dispatch queue; the live aggregate
// stays in the registry and may still be updated or delivered, which does not
// affect the queued snapshot. Loading is not recorded in the undo history.
//
// Example:
//
//	handler := NewLoadParcelCommandHandler(uowFactory)
//	parcelID, _ := parcel.NewID(7)
//	cmd, _ := NewLoadParcelCommand(parcelID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrParcelNotFound) {
//	    // No active parcel with that id
//	    return
//	}
type LoadParcelCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewLoadParcelCommandHandler creates a handler for parcel staging operations.
// Requires a LoadingUoWFactory for transactional access to the registry and the queue.
func NewLoadParcelCommandHandler(uowFactory LoadingUoWFactory) LoadParcelCommandHandler {
	return LoadParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staging command.
// Fetches the parcel and enqueues its snapshot within one transaction.
// Returns ErrParcelNotFound when the identifier is not active.
func (h *LoadParcelCommandHandler) Handle(ctx context.Context, cmd LoadParcelCommand) error {
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
	queue := uow.DispatchQueue()

	trackedParcel, err := registry.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	if err = queue.Enqueue(ctx, trackedParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
