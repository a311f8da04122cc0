package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// ErrDispatchQueueIsEmpty is returned when dispatch is requested while nothing
// is staged on the queue.
var ErrDispatchQueueIsEmpty = errors.New("dispatch queue is empty")

// DispatchParcelCommandHandler handles the business logic for dispatching.
// Pops the most urgent snapshot off the queue and hands it to the caller.
// Dispatching is terminal for the queued copy: it leaves no history entry and
// does not touch the registry, so it cannot be undone.
//
// Example:
//
//	handler := NewDispatchParcelCommandHandler(uowFactory)
//	cmd := NewDispatchParcelCommand()
//	dispatched, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrDispatchQueueIsEmpty):
//	    log.Println("Nothing staged for dispatch")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Printf("Dispatched parcel %s", dispatched.ID())
//	}
type DispatchParcelCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDispatchParcelCommandHandler creates a handler for dispatch operations.
// Requires a DispatchUoWFactory for transactional access to the queue.
func NewDispatchParcelCommandHandler(uowFactory DispatchUoWFactory) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Dequeues the most urgent parcel within one transaction and returns its
// snapshot. Returns ErrDispatchQueueIsEmpty when nothing is staged.
func (h DispatchParcelCommandHandler) Handle(ctx context.Context, cmd DispatchParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	queue := uow.DispatchQueue()

	dispatched, err := queue.DequeueNext(ctx)
	if errors.Is(err, errs.ErrCollectionIsEmpty) {
		return nil, ErrDispatchQueueIsEmpty
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispatched, nil
}
