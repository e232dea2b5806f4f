// Package guard provides ConstructorGuard, which lets value objects, commands and
// queries detect that they were built through their constructor rather than as a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not valid.
// Only the constructor sets the flag, so Validate fails on a zero value.
//
// Example usage:
//
//	var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility")
//
//	type Facility struct {
//	    loadingPoint string
//	    guard        guard.ConstructorGuard
//	}
//
//	func (f Facility) Validate() error {
//	    return f.guard.Validate(ErrFacilityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
