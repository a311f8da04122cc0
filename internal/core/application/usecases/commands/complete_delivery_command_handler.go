package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler orchestrates the delivery completion process.
// Removes the parcel from the registry, appends a receipt to the delivery
// ledger and records a Removed history entry. Undoing the removal later puts
// the parcel back but never retracts the receipt; the ledger is a permanent
// audit trail.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	parcelID, _ := parcel.NewID(7)
//	cmd, _ := NewCompleteDeliveryCommand(parcelID)
//
//	receipt, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrParcelNotFound):
//	    log.Println("No active parcel with that id")
//	case err != nil:
//	    log.Printf("Delivery failed: %v", err)
//	default:
//	    log.Printf("Delivered, receipt %s", receipt.ID())
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a DeliveryUoWFactory for transactional access to the registry, the
// history and the ledger.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Removes the parcel, writes the ledger receipt and pushes the Removed history
// entry within a single transaction, then returns the receipt record.
// Returns ErrParcelNotFound when the identifier is not active.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (delivery.Record, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Record{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return delivery.Record{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.ParcelRegistry()
	ledger := uow.DeliveryLedger()
	history := uow.HistoryStack()

	removed, err := registry.Remove(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return delivery.Record{}, ErrParcelNotFound
	}
	if err != nil {
		return delivery.Record{}, err
	}

	receipt, err := delivery.NewRecord(removed)
	if err != nil {
		return delivery.Record{}, err
	}

	if err = ledger.Append(ctx, receipt); err != nil {
		return delivery.Record{}, err
	}

	entry, err := tracking.NewRemovedEntry(removed)
	if err != nil {
		return delivery.Record{}, err
	}

	if err = history.Push(ctx, entry); err != nil {
		return delivery.Record{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return delivery.Record{}, err
	}

	return receipt, nil
}
