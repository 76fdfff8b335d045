// Package guard helps aggregates and value objects tell a constructed instance
// apart from its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded object is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain types that must only be created through
// their constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrUserNotConstructed = errors.New("User must be created via NewUser")
//
//	type User struct {
//	    id    kernel.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func (u *User) Validate() error {
//	    return u.guard.Validate(ErrUserNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
