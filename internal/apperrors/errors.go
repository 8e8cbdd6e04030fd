// Package apperrors holds the sentinel errors shared by services and
// repositories. Handlers match them with errors.Is to pick HTTP statuses;
// anything else is treated as a storage failure.
package apperrors

import "errors"

var (
	// ErrNotFound marks a lookup for an id that does not exist. It is
	// returned even to a resource's would-be owner.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks a mutation or read attempted by an authenticated
	// user who does not own the resource. The resource is left untouched.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyCart marks a checkout attempt with zero cart lines. No order
	// is created and nothing is mutated.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken marks a signup with an already registered email.
	ErrEmailTaken = errors.New("email already used")

	// ErrValidation marks input rejected before it reached storage, e.g. a
	// negative price or an unknown payment method.
	ErrValidation = errors.New("validation failed")
)
