// Package entity defines the domain entities for the recipes feature.
package entity

import "time"

// Status is the moderation state of a recipe.
type Status string

const (
	// StatusPending is the initial state of every new recipe.
	// Pending recipes are visible only to their owner and to admins.
	StatusPending Status = "pending"

	// StatusApproved marks a recipe as publicly visible.
	StatusApproved Status = "approved"

	// StatusRejected hides a recipe from the public listing.
	// The owner still sees it in their own list.
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three defined moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Recipe represents a user-submitted recipe.
type Recipe struct {
	// ID is the unique identifier for the recipe.
	ID uint `gorm:"primaryKey"`

	// Name is the recipe title.
	Name string `gorm:"size:255;not null"`

	// Description is a short free-text summary.
	Description string `gorm:"type:text"`

	// Ingredients is the ordered ingredient list.
	Ingredients []string `gorm:"serializer:json"`

	// Instructions is the free-text preparation steps.
	Instructions string `gorm:"type:text"`

	// CookingTime is the preparation time in minutes.
	CookingTime int

	// RecipeImg is the URL of the recipe image.
	RecipeImg string `gorm:"size:512"`

	// UserOwner is the ID of the creating user. Exactly one owner,
	// immutable after creation.
	UserOwner uint `gorm:"index;not null"`

	// Status is the moderation state. New recipes always start pending.
	Status Status `gorm:"size:16;not null;default:pending;index"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the recipe was last updated.
	UpdatedAt time.Time
}
