package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrUndoCommandIsNotConstructed = errors.New(
	"UndoCommand must be created via NewUndoCommand constructor",
)

// UndoCommand triggers the reversal of the most recent tracked mutation.
// Registrations, weight updates and delivery removals are tracked; loading
// and dispatching are not. Undo itself is never tracked, so there is no redo.
//
// Example:
//
//	cmd := NewUndoCommand()
//	handler := NewUndoCommandHandler(uowFactory)
//	entry, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNothingToUndo) {
//	    log.Println("History is empty")
//	}
type UndoCommand struct {
	guard guard.ConstructorGuard
}

// NewUndoCommand creates a new command to undo the last tracked mutation.
// This is a parameterless command; the history stack selects the entry.
func NewUndoCommand() UndoCommand {
	return UndoCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrUndoCommandIsNotConstructed if validation fails.
func (c *UndoCommand) Validate() error {
	return c.guard.Validate(
		ErrUndoCommandIsNotConstructed,
	)
}
