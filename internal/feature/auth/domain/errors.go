// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for identity and authentication operations. Upper layers
// match on these with errors.Is and translate them to transport codes.
var (
	// ErrUserAlreadyExists indicates that registration was attempted with
	// an email that already has an account.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrEmailAlreadyExists is the identity store's duplicate-email
	// failure, raised by the storage layer's uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound indicates that no user matched the lookup. Absence
	// is a valid result for lookups; callers decide whether it is fatal.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every login failure. It never
	// reveals whether the email exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
