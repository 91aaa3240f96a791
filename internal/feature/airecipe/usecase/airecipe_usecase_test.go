package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"letscook_backend/internal/feature/airecipe/domain/entity"
)

// mockDraftGenerator is a mock implementation of the DraftGenerator interface.
type mockDraftGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockDraftGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("generate not configured")
}

// mockRateLimiter counts how often the limiter gate was passed.
type mockRateLimiter struct {
	calls int
}

func (m *mockRateLimiter) WaitIfNeeded() {
	m.calls++
}

const validDraftJSON = `{
  "name": "Garlic Butter Pasta",
  "description": "A quick weeknight pasta.",
  "ingredients": ["200g spaghetti", "3 cloves garlic", "50g butter"],
  "instructions": "Boil pasta.\nMelt butter with garlic.\nToss together.",
  "cookingTime": 20,
  "difficulty": "Easy",
  "calories": 550
}`

func TestAIRecipeUsecase_GenerateDraft(t *testing.T) {
	t.Run("parses plain json output", func(t *testing.T) {
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "garlic, butter") {
					t.Errorf("prompt is missing the ingredient list: %q", prompt)
				}
				return validDraftJSON, nil
			},
		}
		limiter := &mockRateLimiter{}

		uc := NewAIRecipeUsecase(gen, limiter)
		draft, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic", "butter"},
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Name != "Garlic Butter Pasta" {
			t.Errorf("unexpected name: %q", draft.Name)
		}
		if draft.CookingTime != 20 || draft.Calories != 550 {
			t.Errorf("unexpected draft: %+v", draft)
		}
		if draft.ImageURL != DefaultDraftImageURL {
			t.Errorf("expected default image url, got %q", draft.ImageURL)
		}
		if limiter.calls != 1 {
			t.Errorf("expected 1 limiter call, got %d", limiter.calls)
		}
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "```json\n" + validDraftJSON + "\n```", nil
			},
		}

		uc := NewAIRecipeUsecase(gen, nil)
		draft, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Name != "Garlic Butter Pasta" {
			t.Errorf("unexpected name: %q", draft.Name)
		}
	})

	t.Run("includes optional preferences in the prompt", func(t *testing.T) {
		var prompt string
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, p string) (string, error) {
				prompt = p
				return validDraftJSON, nil
			},
		}

		uc := NewAIRecipeUsecase(gen, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
			Cuisine:     "Italian",
			CookingTime: "30 minutes",
			Difficulty:  "Easy",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Italian", "30 minutes", "Easy"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt is missing %q", want)
			}
		}
	})

	t.Run("non-json output", func(t *testing.T) {
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Sorry, I can't help with that.", nil
			},
		}

		uc := NewAIRecipeUsecase(gen, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
		})

		if !errors.Is(err, ErrInvalidDraft) {
			t.Errorf("expected ErrInvalidDraft, got %v", err)
		}
	})

	t.Run("json with missing required fields", func(t *testing.T) {
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"description": "no name, no ingredients"}`, nil
			},
		}

		uc := NewAIRecipeUsecase(gen, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
		})

		if !errors.Is(err, ErrInvalidDraft) {
			t.Errorf("expected ErrInvalidDraft, got %v", err)
		}
	})

	t.Run("empty ingredients after trimming", func(t *testing.T) {
		uc := NewAIRecipeUsecase(&mockDraftGenerator{}, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"  ", ""},
		})

		if !errors.Is(err, ErrNoIngredients) {
			t.Errorf("expected ErrNoIngredients, got %v", err)
		}
	})

	t.Run("too many ingredients", func(t *testing.T) {
		ingredients := make([]string, MaxIngredients+1)
		for i := range ingredients {
			ingredients[i] = "ingredient"
		}

		uc := NewAIRecipeUsecase(&mockDraftGenerator{}, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: ingredients,
		})

		if !errors.Is(err, ErrTooManyIngredients) {
			t.Errorf("expected ErrTooManyIngredients, got %v", err)
		}
	})

	t.Run("generator not configured", func(t *testing.T) {
		uc := NewAIRecipeUsecase(nil, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
		})

		if !errors.Is(err, ErrGeneratorUnavailable) {
			t.Errorf("expected ErrGeneratorUnavailable, got %v", err)
		}
	})

	t.Run("generator backend failure", func(t *testing.T) {
		gen := &mockDraftGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("model overloaded")
			},
		}

		uc := NewAIRecipeUsecase(gen, nil)
		_, err := uc.GenerateDraft(context.Background(), entity.DraftRequest{
			Ingredients: []string{"garlic"},
		})

		if err == nil {
			t.Error("expected error from generator failure")
		}
		if errors.Is(err, ErrInvalidDraft) {
			t.Errorf("backend failure must not be reported as an invalid draft: %v", err)
		}
	})
}
