// Package usecase implements the business logic for the saved feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the user of a save operation does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecipeNotFound is returned when saving a recipe that does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
)
