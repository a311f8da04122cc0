package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the tracking
// state. It provides transaction control and access to the state containers.
// Client code must explicitly manage the transaction lifecycle, and at most
// one transaction runs at a time: Begin blocks until the store is free, so
// every request observes and mutates the state in full isolation.
type UnitOfWork interface {
	// Begin starts a new transaction, taking exclusive ownership of the store.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// ParcelRegistry returns a ParcelRegistry instance bound to the current transaction.
	// The registry will use the transaction started by Begin().
	ParcelRegistry() ParcelRegistry

	// DispatchQueue returns a DispatchQueue instance bound to the current transaction.
	// The queue will use the transaction started by Begin().
	DispatchQueue() DispatchQueue

	// HistoryStack returns a HistoryStack instance bound to the current transaction.
	// The stack will use the transaction started by Begin().
	HistoryStack() HistoryStack

	// DeliveryLedger returns a DeliveryLedger instance bound to the current transaction.
	// The ledger will use the transaction started by Begin().
	DeliveryLedger() DeliveryLedger
}
