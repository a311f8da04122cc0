// Package ports defines storage interfaces for the parcel-tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
)

// DeliveryLedger defines the contract for the append-only delivery audit trail.
// Records are kept in completion order and are never updated or removed, not
// even when the delivery that produced them is undone.
type DeliveryLedger interface {
	// Append adds a delivery record to the end of the ledger.
	// The record must be valid.
	Append(ctx context.Context, record delivery.Record) error

	// GetAll retrieves every delivery record in completion order.
	GetAll(ctx context.Context) ([]delivery.Record, error)
}
