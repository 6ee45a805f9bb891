// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered account in the system.
// It is created inactive by registration and flipped to active exactly once;
// is_active never reverts to false.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the bcrypt digest of the user's password.
	// This should never store plaintext passwords.
	HashedPassword string `gorm:"size:255;not null"`

	// IsActive reports whether the account has completed activation.
	IsActive bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
