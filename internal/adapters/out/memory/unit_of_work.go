// Package memory provides the in-memory implementation of the Unit of Work
// pattern and the storage ports. The whole tracking state lives in a single
// Store; a unit of work takes exclusive ownership of that store for the span
// of one business operation.
//
// Key Features:
//   - Transaction management across all four state containers
//   - One store-wide lock, so every operation runs in full isolation
//   - Context-aware lock acquisition for cancellable requests
//   - Repository views bound to the owning store
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	store := NewStore()
//	factory := NewStoreUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// Perform repository operations
//	if err := uow.ParcelRegistry().Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Container Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations run under the same exclusive lock
//	registry := uow.ParcelRegistry()
//	history := uow.HistoryStack()
//
//	if err := registry.Add(ctx, parcel); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := history.Push(ctx, entry); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Error Handling:
//   - Always handle Begin() errors; Begin fails when the context is done
//   - A failed handler validates before mutating, so releasing the lock
//     without compensating writes keeps the state consistent
//   - Commit and Rollback on a finished transaction return ErrInvalidTransaction
//
// Concurrency Considerations:
//   - Each UnitOfWork instance is used by one goroutine
//   - Concurrent units of work queue up on the store lock in arrival order
//   - Repository views must not be used outside Begin/Commit boundaries
package memory

import (
	"context"
	"errors"

	"parceltrack/internal/core/ports"
)

// ErrInvalidTransaction is returned when Commit or Rollback is called on a
// unit of work that has no running transaction.
var ErrInvalidTransaction = errors.New("invalid transaction: not started or already finished")

// StoreUnitOfWorkFactory creates UnitOfWork instances bound to one in-memory
// store. Factory ensures each business operation gets a fresh unit of work
// instance with its own transaction state.
//
// Example:
//
//	store := NewStore()
//	factory := NewStoreUnitOfWorkFactory(store)
//	uow := factory.Create()
type StoreUnitOfWorkFactory struct {
	store *Store
}

// NewStoreUnitOfWorkFactory creates a factory for store-backed unit of work
// instances. All created instances share the provided store.
func NewStoreUnitOfWorkFactory(store *Store) *StoreUnitOfWorkFactory {
	return &StoreUnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for transaction management.
// Each instance maintains its own transaction state; the underlying store is
// shared and guarded by its lock.
func (f *StoreUnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewStoreUnitOfWork(f.store)
}

// StoreUnitOfWork coordinates exclusive access to the in-memory store for one
// business operation. Begin takes the store lock, Commit and Rollback give it
// back. Since all state lives in memory and handlers validate their inputs
// before mutating anything, there is nothing to revert on rollback; releasing
// the lock is the whole of both outcomes.
//
// Example usage:
//
//	uow := NewStoreUnitOfWork(store)
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	registry := uow.ParcelRegistry()
//	if err := registry.Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type StoreUnitOfWork struct {
	store  *Store
	active bool
}

// NewStoreUnitOfWork creates a unit of work bound to the given store.
// The transaction is not started; callers must invoke Begin.
func NewStoreUnitOfWork(store *Store) *StoreUnitOfWork {
	return &StoreUnitOfWork{store: store}
}

// Begin starts the transaction by taking exclusive ownership of the store.
// Blocks until the store is free or the context is done. Calling Begin on an
// already running transaction is a no-op.
func (uow *StoreUnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	return nil
}

// Commit finalizes the transaction and releases the store.
// All mutations performed while the lock was held are already in place.
//
// Returns ErrInvalidTransaction if no transaction is running.
func (uow *StoreUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	uow.store.release()
	uow.active = false
	return nil
}

// Rollback abandons the transaction and releases the store.
// Handlers only mutate state after their checks pass, so an abandoned
// transaction has nothing to undo.
//
// Returns ErrInvalidTransaction if no transaction is running, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *StoreUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	uow.store.release()
	uow.active = false
	return nil
}

// ParcelRegistry returns the registry view bound to the owning store.
// Must be used between Begin and Commit or Rollback.
func (uow *StoreUnitOfWork) ParcelRegistry() ports.ParcelRegistry {
	return &storeParcelRegistry{store: uow.store}
}

// DispatchQueue returns the queue view bound to the owning store.
// Must be used between Begin and Commit or Rollback.
func (uow *StoreUnitOfWork) DispatchQueue() ports.DispatchQueue {
	return &storeDispatchQueue{store: uow.store}
}

// HistoryStack returns the history view bound to the owning store.
// Must be used between Begin and Commit or Rollback.
func (uow *StoreUnitOfWork) HistoryStack() ports.HistoryStack {
	return &storeHistoryStack{store: uow.store}
}

// DeliveryLedger returns the ledger view bound to the owning store.
// Must be used between Begin and Commit or Rollback.
func (uow *StoreUnitOfWork) DeliveryLedger() ports.DeliveryLedger {
	return &storeDeliveryLedger{store: uow.store}
}
