// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across container boundaries. Each
// handler sees only the containers its operation may touch; the undo handler,
// for example, cannot reach the delivery ledger at all.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple container calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRegistryFactory provides access to the parcel registry within a transaction.
	ParcelRegistryFactory interface {
		ParcelRegistry() ports.ParcelRegistry
	}

	// DispatchQueueFactory provides access to the dispatch queue within a transaction.
	DispatchQueueFactory interface {
		DispatchQueue() ports.DispatchQueue
	}

	// HistoryStackFactory provides access to the history stack within a transaction.
	HistoryStackFactory interface {
		HistoryStack() ports.HistoryStack
	}

	// DeliveryLedgerFactory provides access to the delivery ledger within a transaction.
	DeliveryLedgerFactory interface {
		DeliveryLedger() ports.DeliveryLedger
	}

	// TrackingUoW manages transactions over the registry and the history stack.
	// Used by commands that mutate parcels and record or consume undo entries.
	TrackingUoW interface {
		TxManager
		ParcelRegistryFactory
		HistoryStackFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// LoadingUoW manages transactions over the registry and the dispatch queue.
	// Used when staging a registered parcel for dispatch.
	LoadingUoW interface {
		TxManager
		ParcelRegistryFactory
		DispatchQueueFactory
	}

	// LoadingUoWFactory creates new loading unit of work instances.
	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// DispatchUoW manages transactions over the dispatch queue alone.
	// Dispatching never touches the registry, the history or the ledger.
	DispatchUoW interface {
		TxManager
		DispatchQueueFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DeliveryUoW manages transactions over the registry, the history stack and
	// the delivery ledger. Used for completing deliveries, the one operation
	// that spans all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   registry := uow.ParcelRegistry()
	//   ledger := uow.DeliveryLedger()
	//   history := uow.HistoryStack()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		ParcelRegistryFactory
		HistoryStackFactory
		DeliveryLedgerFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
