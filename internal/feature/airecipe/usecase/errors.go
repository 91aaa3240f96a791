// Package usecase implements the business logic for the airecipe feature.
package usecase

import "errors"

var (
	// ErrNoIngredients is returned when a draft is requested without ingredients.
	ErrNoIngredients = errors.New("at least one ingredient is required")

	// ErrTooManyIngredients is returned when the ingredient list exceeds the limit.
	ErrTooManyIngredients = errors.New("too many ingredients")

	// ErrGeneratorUnavailable is returned when no generation backend is configured.
	ErrGeneratorUnavailable = errors.New("recipe generation is not available")

	// ErrInvalidDraft is returned when the model's output cannot be parsed
	// into a well-formed draft.
	ErrInvalidDraft = errors.New("generator returned an invalid draft")
)
