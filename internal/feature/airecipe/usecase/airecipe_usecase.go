// Package usecase はairecipeフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"letscook_backend/internal/feature/airecipe/domain/entity"
)

const (
	// MaxIngredients は1回のリクエストで指定できる食材数の上限です。
	MaxIngredients = 30

	// DefaultDraftImageURL はAI生成レシピに付与される既定の画像URLです。
	DefaultDraftImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
)

// DraftGenerator は生成AIバックエンドを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type DraftGenerator interface {
	// Generate はプロンプトからテキストを生成します。
	Generate(ctx context.Context, prompt string) (string, error)
}

// RateLimiter は外部API呼び出しの頻度制限を抽象化します。
type RateLimiter interface {
	WaitIfNeeded()
}

// aiRecipeUsecase は食材リストからレシピ草稿を生成するビジネスロジックを提供します。
type aiRecipeUsecase struct {
	generator DraftGenerator
	limiter   RateLimiter
}

// NewAIRecipeUsecase はaiRecipeUsecaseの新しいインスタンスを生成します。
// generatorはnil可で、その場合GenerateDraftはErrGeneratorUnavailableを返します。
// limiterもnil可で、その場合は頻度制限なしで呼び出します。
func NewAIRecipeUsecase(generator DraftGenerator, limiter RateLimiter) *aiRecipeUsecase {
	return &aiRecipeUsecase{generator: generator, limiter: limiter}
}

// buildPrompt は草稿リクエストからモデルへのプロンプトを組み立てます。
// 出力はマークダウンなしの純粋なJSONオブジェクトであることをモデルに要求します。
func buildPrompt(req entity.DraftRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a unique and delicious recipe using these ingredients: %s.\n",
		strings.Join(req.Ingredients, ", "))
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "Cuisine style: %s\n", req.Cuisine)
	}
	if req.CookingTime != "" {
		fmt.Fprintf(&b, "Preferred cooking time: %s\n", req.CookingTime)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty level: %s\n", req.Difficulty)
	}
	b.WriteString(`
The output MUST be a valid JSON object with NO markdown formatting, NO backticks, and NO extra text.
Use this exact structure:
{
  "name": "Creative Recipe Name",
  "description": "A brief appetizing description (2-3 sentences)",
  "ingredients": ["List of ingredients with quantities"],
  "instructions": "Step-by-step cooking instructions with newline characters for formatting",
  "cookingTime": 30,
  "difficulty": "Easy/Medium/Hard",
  "calories": 500
}
`)
	return b.String()
}

// stripFences はモデルがプロンプトに反して付けてくるマークダウンのコードフェンスを除去します。
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// GenerateDraft は食材リストからレシピ草稿を生成します。
// モデル出力が構造化データとしてパースできない場合、ErrInvalidDraftを返します。
// 草稿は永続化されず、失敗時に副作用はありません。
func (u *aiRecipeUsecase) GenerateDraft(ctx context.Context, req entity.DraftRequest) (*entity.RecipeDraft, error) {
	if u.generator == nil {
		return nil, ErrGeneratorUnavailable
	}
	ingredients := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if len(ingredients) > MaxIngredients {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyIngredients, len(ingredients), MaxIngredients)
	}
	req.Ingredients = ingredients

	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}

	raw, err := u.generator.Generate(ctx, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("draft generation failed: %w", err)
	}

	var draft entity.RecipeDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if draft.Name == "" || len(draft.Ingredients) == 0 || draft.Instructions == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidDraft)
	}

	draft.ImageURL = DefaultDraftImageURL
	return &draft, nil
}
