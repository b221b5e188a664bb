package account

import "errors"

var (
	// ErrEmailExists indicates the email is already registered.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned when authentication fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingField signals an empty required input.
	ErrMissingField = errors.New("missing required field")
	// ErrUserNotFound signals that the user could not be located.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnauthorized represents a missing or invalid session token.
	ErrUnauthorized = errors.New("unauthorized")
)
