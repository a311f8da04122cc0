package memory

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/tracking"
)

// Store holds the entire tracking state in process memory: the active parcel
// registry, the dispatch queue, the undo history and the delivery ledger.
// One Store instance backs the whole application for its lifetime.
//
// Access is serialized through a single exclusive lock held for the duration
// of a unit of work. The lock is a buffered channel rather than a sync.Mutex
// so that acquisition can be abandoned when the caller's context is done.
type Store struct {
	// lock serializes units of work; holding the token means owning the store
	lock chan struct{}

	// parcels indexes active parcels by identifier
	parcels map[parcel.ID]*parcel.Parcel

	// order keeps the registration order of active parcel identifiers
	order []parcel.ID

	// queue stages parcel snapshots for dispatch, most urgent first
	queue dispatchHeap

	// nextSeq numbers queue arrivals so equal priorities dispatch in FIFO order
	nextSeq uint64

	// history records undoable mutations, most recent last
	history []tracking.Entry

	// ledger accumulates delivery receipts in completion order
	ledger []delivery.Record
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		lock:    make(chan struct{}, 1),
		parcels: make(map[parcel.ID]*parcel.Parcel),
		order:   make([]parcel.ID, 0),
		queue:   make(dispatchHeap, 0),
		history: make([]tracking.Entry, 0),
		ledger:  make([]delivery.Record, 0),
	}
}

// acquire takes exclusive ownership of the store, blocking until the store is
// free or the context is done.
func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release gives up ownership of the store.
// Must only be called by the current owner.
func (s *Store) release() {
	<-s.lock
}

// removeFromOrder drops an identifier from the registration order,
// preserving the relative order of the remaining parcels.
func (s *Store) removeFromOrder(id parcel.ID) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
