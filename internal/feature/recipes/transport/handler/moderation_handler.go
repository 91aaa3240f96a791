package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"letscook_backend/internal/api"
	"letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/recipes/usecase"
)

// ModerationUsecase はレシピ審査のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ModerationUsecase interface {
	ListPending(ctx context.Context) ([]entity.Recipe, error)
	SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Recipe, error)
	ScreenImage(ctx context.Context, id uint) (*entity.ScreenVerdict, error)
}

// ModerationHandler は管理者向け審査APIのHTTPリクエストを処理します。
// ルーティング層でAdminRequiredミドルウェアにより保護されます。
type ModerationHandler struct {
	uc ModerationUsecase
}

// NewModerationHandler はModerationHandlerの新しいインスタンスを生成します。
func NewModerationHandler(uc ModerationUsecase) *ModerationHandler {
	return &ModerationHandler{uc: uc}
}

// ListPending は審査待ちレシピの一覧を返すAPIです。
func (h *ModerationHandler) ListPending(c *gin.Context) {
	recipes, err := h.uc.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeList(recipes))
}

// UpdateStatus はレシピのステータスを更新するAPIです。
// - statusがapproved/rejected以外の場合は400を返却
// - レシピが存在しない場合は404を返却
// - 成功時は更新後のレシピ付きで200を返却
func (h *ModerationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}
	var req api.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	recipe, err := h.uc.SetStatus(c.Request.Context(), id, entity.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid status"})
		case errors.Is(err, usecase.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}
	slog.Info("recipe status updated", "recipe_id", id, "status", req.Status)
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// ScreenImage はレシピ画像のセーフサーチ判定を返すAPIです。
// スクリーニングバックエンド未設定の場合は503を返却します。
func (h *ModerationHandler) ScreenImage(c *gin.Context) {
	id, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}
	verdict, err := h.uc.ScreenImage(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScreeningUnavailable):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "image screening is not available"})
		case errors.Is(err, usecase.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
		case errors.Is(err, usecase.ErrNoImage):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "recipe has no image"})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "image screening failed"})
		}
		return
	}
	c.JSON(http.StatusOK, api.ScreenResponse{
		RecipeID: id,
		Adult:    verdict.Adult,
		Violence: verdict.Violence,
		Racy:     verdict.Racy,
		Flagged:  verdict.Flagged,
	})
}
