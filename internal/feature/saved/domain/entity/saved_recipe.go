// Package entity defines the domain entities for the saved feature.
package entity

import "time"

// SavedRecipe is one bookmark of a recipe by a user.
// There is one row per save operation: saving the same recipe twice
// produces two rows, and the save order is the row-ID order.
type SavedRecipe struct {
	// ID is the unique identifier for the save row.
	ID uint `gorm:"primaryKey"`

	// UserID is the ID of the user who saved the recipe.
	UserID uint `gorm:"index;not null"`

	// RecipeID is the ID of the saved recipe. The reference is not
	// enforced: deleting a recipe leaves the row dangling.
	RecipeID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp of the save.
	CreatedAt time.Time
}

// TableName fixes the table name for GORM.
func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
