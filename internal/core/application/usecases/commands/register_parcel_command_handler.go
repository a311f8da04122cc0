package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"
)

// ErrParcelAlreadyRegistered is returned when the command targets an identifier
// that already belongs to an active parcel.
var ErrParcelAlreadyRegistered = errors.New("parcel already registered")

// RegisterParcelCommandHandler handles the business logic for parcel registration.
// Creates the parcel aggregate, stores it in the registry and records a
// reversible history entry for the registration.
//
// Example:
//
//	handler := NewRegisterParcelCommandHandler(uowFactory)
//	parcelID, _ := parcel.NewID(7)
//	priority, _ := parcel.NewPriority(2)
//	cmd, _ := NewRegisterParcelCommand(parcelID, "Acme Ltd", "J. Smith", "12 Harbour Rd", 1.25, priority)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel registration failed: %w", err)
//	}
//	// Parcel is now active and its registration can be undone
type RegisterParcelCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration operations.
// Requires a TrackingUoWFactory for transactional access to the registry and the history.
func NewRegisterParcelCommandHandler(uowFactory TrackingUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command.
// Builds the aggregate, adds it to the registry and pushes a Registered history
// entry, all within one transaction. Returns ErrParcelAlreadyRegistered when the
// identifier is already active; the state is unchanged in that case.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Address(),
		cmd.Weight(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	entry, err := tracking.NewRegisteredEntry(newParcel)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()
	history := uow.HistoryStack()

	if err = registry.Add(ctx, newParcel); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ErrParcelAlreadyRegistered
		}
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
