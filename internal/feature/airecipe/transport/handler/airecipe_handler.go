// Package handler はairecipeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"letscook_backend/internal/api"
	"letscook_backend/internal/feature/airecipe/domain/entity"
	"letscook_backend/internal/feature/airecipe/usecase"
)

// AIRecipeUsecase はレシピ草稿生成のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AIRecipeUsecase interface {
	GenerateDraft(ctx context.Context, req entity.DraftRequest) (*entity.RecipeDraft, error)
}

// AIRecipeHandler はレシピ草稿生成のHTTPリクエストを処理します。
type AIRecipeHandler struct {
	uc AIRecipeUsecase
}

// NewAIRecipeHandler はAIRecipeHandlerの新しいインスタンスを生成します。
func NewAIRecipeHandler(uc AIRecipeUsecase) *AIRecipeHandler {
	return &AIRecipeHandler{uc: uc}
}

// Generate は食材リストからレシピ草稿を生成するAPIです。
// - 食材未指定時は400を返却
// - 生成バックエンド未設定時は503を返却
// - モデル出力がパース不能な場合は502を返却
// - 成功時は草稿付きで200を返却（草稿は永続化されない）
func (h *AIRecipeHandler) Generate(c *gin.Context) {
	var req api.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "please provide a list of ingredients"})
		return
	}

	draft, err := h.uc.GenerateDraft(c.Request.Context(), entity.DraftRequest{
		Ingredients: req.Ingredients,
		Cuisine:     req.Cuisine,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoIngredients), errors.Is(err, usecase.ErrTooManyIngredients):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrGeneratorUnavailable):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "recipe generation is not available"})
		case errors.Is(err, usecase.ErrInvalidDraft):
			slog.Warn("draft parse failed", "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to generate recipe, please try again"})
		default:
			slog.Error("draft generation failed", "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to generate recipe, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, api.RecipeDraft{
		Name:         draft.Name,
		Description:  draft.Description,
		Ingredients:  draft.Ingredients,
		Instructions: draft.Instructions,
		CookingTime:  draft.CookingTime,
		Difficulty:   draft.Difficulty,
		Calories:     draft.Calories,
		ImageURL:     draft.ImageURL,
	})
}
