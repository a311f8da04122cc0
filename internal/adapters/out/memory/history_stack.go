package memory

import (
	"context"

	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"
)

// storeHistoryStack implements HistoryStack over the store's entry slice.
// Entries own their snapshots, so the stack stores them as given.
type storeHistoryStack struct {
	store *Store
}

// Push records a mutation on top of the stack.
func (h *storeHistoryStack) Push(_ context.Context, entry tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	h.store.history = append(h.store.history, entry)
	return nil
}

// Pop removes and returns the most recent entry.
func (h *storeHistoryStack) Pop(_ context.Context) (tracking.Entry, error) {
	n := len(h.store.history)
	if n == 0 {
		return tracking.Entry{}, errs.NewCollectionIsEmptyError("history stack")
	}

	entry := h.store.history[n-1]
	h.store.history = h.store.history[:n-1]
	return entry, nil
}
