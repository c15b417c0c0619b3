package application

import "errors"

// Error kinds surfaced by the services. The HTTP layer maps these to status
// codes; everything else is treated as an internal error.
var (
	// ErrValidation covers malformed or missing input.
	ErrValidation = errors.New("missing or invalid fields")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when the addressed blog or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when an authenticated caller is not the owner
	// of the resource being mutated.
	ErrForbidden = errors.New("forbidden")
)
