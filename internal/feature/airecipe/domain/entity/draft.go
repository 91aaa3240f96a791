// Package entity defines the domain entities for the airecipe feature.
package entity

// RecipeDraft is a machine-generated recipe suggestion.
// It is never persisted; the client decides whether to turn it into a
// real recipe via the normal create flow.
type RecipeDraft struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  int      `json:"cookingTime"`
	Difficulty   string   `json:"difficulty"`
	Calories     int      `json:"calories"`

	// ImageURL is attached after generation; the model does not pick images.
	ImageURL string `json:"imageUrl"`
}

// DraftRequest carries the user's constraints for a draft.
// Only Ingredients is mandatory.
type DraftRequest struct {
	Ingredients []string
	Cuisine     string
	CookingTime string
	Difficulty  string
}
