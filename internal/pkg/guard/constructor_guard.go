// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was created through its designated
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that domain objects are only created through their
// constructor functions. The guard holds an internal flag that is only set when
// the object is built via NewConstructorGuard; a zero-value struct fails
// validation.
//
// Example usage:
//
//	type Command struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand(value string) (Command, error) {
//	    if value == "" {
//	        return Command{}, errors.New("value is required")
//	    }
//	    return Command{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if it was not
//   - ErrDefaultConstructorGuard if validationError is nil and the object was
//     not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
