// Package usecase implements the business logic for the recipes feature.
package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipe exists with the given ID.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidStatus is returned when a moderation update names a status
	// outside {approved, rejected}.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEmptyQuery is returned when a search is issued without a query string.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrScreeningUnavailable is returned when image screening is requested
	// but no screening backend is configured.
	ErrScreeningUnavailable = errors.New("image screening is not available")

	// ErrNoImage is returned when screening a recipe that has no image URL.
	ErrNoImage = errors.New("recipe has no image")
)
