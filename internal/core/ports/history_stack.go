package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/tracking"
)

// HistoryStack defines the contract for the undo history.
// Entries are kept last-in-first-out, so Pop always yields the entry for the
// most recent tracked mutation.
type HistoryStack interface {
	// Push places an entry on top of the stack.
	// The entry must be valid.
	Push(ctx context.Context, entry tracking.Entry) error

	// Pop removes and returns the most recent entry.
	// Returns a CollectionIsEmptyError when the stack holds no entries.
	Pop(ctx context.Context) (tracking.Entry, error)
}
