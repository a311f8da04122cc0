package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate() when a
// nil error is passed as the validation error, so validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes it possible to detect whether the struct was initialized through
// its constructor or left as a zero value, which keeps domain invariants from
// silently leaking in through direct struct literals.
//
// Example usage:
//
//	var ErrPriorityNotConstructed = errors.New("Priority must be created via NewPriority")
//
//	type Priority struct {
//	    level int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPriority(level int) (Priority, error) {
//	    if level < 1 || level > 5 {
//	        return Priority{}, errors.New("level must be between 1 and 5")
//	    }
//	    return Priority{
//	        level: level,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (p Priority) Validate() error {
//	    return p.guard.Validate(ErrPriorityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, the provided validationError is
// returned. If validationError is nil, ErrDefaultConstructorGuard is returned
// instead.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
