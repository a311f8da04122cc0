package commands

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ErrNothingToUndo is returned when undo is requested while the history stack
// is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// UndoCommandHandler orchestrates the reversal of tracked mutations.
// Pops the most recent history entry and applies its inverse to the registry:
// a registration is removed, a weight update is rolled back to the pre-update
// state, a delivery removal is re-inserted. When the target parcel has since
// disappeared or its id has been taken again, the reversal is a silent no-op;
// popping the entry still consumes it. The delivery ledger is never touched.
//
// Example:
//
//	handler := NewUndoCommandHandler(uowFactory)
//	cmd := NewUndoCommand()
//	entry, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNothingToUndo):
//	    log.Println("History is empty")
//	case err != nil:
//	    log.Printf("Undo failed: %v", err)
//	default:
//	    log.Printf("Reverted %s of parcel %s", entry.Kind(), entry.Parcel().ID())
//	}
type UndoCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUndoCommandHandler creates a handler for undo operations.
// Requires a TrackingUoWFactory for transactional access to the registry and
// the history; the narrowed unit of work keeps the ledger out of reach.
func NewUndoCommandHandler(uowFactory TrackingUoWFactory) UndoCommandHandler {
	return UndoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo command.
// Pops the most recent entry, applies the matching reversal within one
// transaction and returns the consumed entry. Returns ErrNothingToUndo when
// the history stack is empty.
func (h UndoCommandHandler) Handle(ctx context.Context, cmd UndoCommand) (tracking.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return tracking.Entry{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return tracking.Entry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()
	history := uow.HistoryStack()

	entry, err := history.Pop(ctx)
	if errors.Is(err, errs.ErrCollectionIsEmpty) {
		return tracking.Entry{}, ErrNothingToUndo
	}
	if err != nil {
		return tracking.Entry{}, err
	}

	if err = h.revert(ctx, registry, entry); err != nil {
		return tracking.Entry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return tracking.Entry{}, err
	}

	return entry, nil
}

// revert applies the inverse of a single history entry to the registry.
// A missing reversal target is swallowed: the mutation being reversed can
// legitimately have been superseded by a later delivery or registration.
func (h UndoCommandHandler) revert(ctx context.Context, registry ports.ParcelRegistry, entry tracking.Entry) error {
	switch entry.Kind() {
	case tracking.Registered:
		_, err := registry.Remove(ctx, entry.Parcel().ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err

	case tracking.Updated:
		err := registry.Update(ctx, entry.Parcel())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err

	case tracking.Removed:
		return registry.ReInsert(ctx, entry.Parcel())

	default:
		return fmt.Errorf("cannot revert history entry of kind %s", entry.Kind())
	}
}
