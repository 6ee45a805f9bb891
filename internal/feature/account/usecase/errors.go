// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrActivationCodeNotFound is returned when a user has no pending activation code row.
	ErrActivationCodeNotFound = errors.New("activation code not found")

	// ErrUserAlreadyExists is returned when registering an email that already has a user.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned when the email/password pair cannot be verified,
	// or when an activation request names a user id that does not exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidActivationCode is returned when no code row exists for the user,
	// the supplied code does not match the stored digest, or the code was already used.
	ErrInvalidActivationCode = errors.New("invalid activation code")

	// ErrActivationCodeExpired is returned when the code matches but its TTL has passed.
	ErrActivationCodeExpired = errors.New("activation code expired")

	// ErrUserAlreadyActive is returned when activating an account that is already active.
	ErrUserAlreadyActive = errors.New("user is already active")

	// ErrActivationEmailFailed is returned by Register when the user and code rows were
	// committed but the activation email could not be delivered. The registration itself
	// is never rolled back for a delivery failure.
	ErrActivationEmailFailed = errors.New("activation email delivery failed")
)
