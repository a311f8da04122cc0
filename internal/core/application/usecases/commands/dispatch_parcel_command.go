package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrDispatchParcelCommandIsNotConstructed = errors.New(
	"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
)

// DispatchParcelCommand triggers the dispatch of the most urgent queued parcel.
// This command represents sending the next parcel out for delivery: the queue
// decides which parcel leaves based on priority and staging order.
//
// Example:
//
//	cmd := NewDispatchParcelCommand()
//	handler := NewDispatchParcelCommandHandler(uowFactory)
//	dispatched, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDispatchQueueIsEmpty) {
//	    log.Println("Nothing staged for dispatch")
//	}
type DispatchParcelCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchParcelCommand creates a new command to dispatch the next queued parcel.
// This is a parameterless command; the queue ordering selects the parcel.
func NewDispatchParcelCommand() DispatchParcelCommand {
	return DispatchParcelCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchParcelCommandIsNotConstructed if validation fails.
func (c *DispatchParcelCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchParcelCommandIsNotConstructed,
	)
}
