package entity

import "time"

// ActivationCode is the single pending activation code for a user.
// A new code replaces the previous row for the same user and resets Used.
// The code is valid only while Used is false and the current time is at or
// before ExpiresAt.
type ActivationCode struct {
	// UserID references exactly one User; at most one live row per user.
	UserID uint `gorm:"primaryKey"`

	// HashedCode is the sha256 hex digest of the 4-digit code.
	// The plaintext code is only ever sent to the user's mailbox.
	HashedCode string `gorm:"size:64;not null"`

	// ExpiresAt is the moment after which the code is no longer accepted.
	ExpiresAt time.Time `gorm:"not null"`

	// Used is set once the code has activated the account.
	Used bool `gorm:"not null;default:false"`
}
