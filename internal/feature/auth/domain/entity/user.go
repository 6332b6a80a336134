// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user, generated at creation
	// and never reused or reassigned.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Email is the address the user registered with, preserved in its
	// original casing for display.
	Email string `gorm:"size:255;not null" json:"email"`

	// EmailKey is the normalized lowercase form of Email. Uniqueness and
	// lookup are case-insensitive, so the unique index lives here.
	EmailKey string `gorm:"uniqueIndex;size:255;not null" json:"-"`

	// PasswordHash is the one-way digest of the user's password.
	// It never leaves the identity store's boundary in responses.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser creates a user with a fresh id and normalized email key.
// The password must already be hashed.
func NewUser(email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		EmailKey:     NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeEmail lowercases and trims an email address for
// case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
