package memory

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
)

// storeDeliveryLedger implements DeliveryLedger over the store's record slice.
// The ledger is append-only; nothing in the package ever shrinks it.
type storeDeliveryLedger struct {
	store *Store
}

// Append adds a delivery receipt to the end of the ledger.
func (l *storeDeliveryLedger) Append(_ context.Context, record delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	l.store.ledger = append(l.store.ledger, record)
	return nil
}

// GetAll retrieves every receipt in completion order.
func (l *storeDeliveryLedger) GetAll(_ context.Context) ([]delivery.Record, error) {
	records := make([]delivery.Record, len(l.store.ledger))
	copy(records, l.store.ledger)
	return records, nil
}
