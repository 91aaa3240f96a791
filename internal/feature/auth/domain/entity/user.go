// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role values stored in User.Role.
const (
	// RoleUser is the default role assigned at registration.
	RoleUser = "user"

	// RoleAdmin marks a moderator account. Admin-only endpoints require it.
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the public handle used for login.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Role is either RoleUser or RoleAdmin.
	Role string `gorm:"size:16;not null;default:user"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
