// Package handler はrecipesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"letscook_backend/internal/api"
	"letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/recipes/usecase"
	jwtmw "letscook_backend/internal/platform/jwt"
)

// RecipeUsecase はレシピ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RecipeUsecase interface {
	Create(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error)
	ListVisible(ctx context.Context) ([]entity.Recipe, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error)
	GetByID(ctx context.Context, id uint) (*entity.Recipe, error)
	Search(ctx context.Context, query string) ([]entity.Recipe, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

// RecipeHandler はレシピ操作のHTTPリクエストを処理します。
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler はRecipeHandlerの新しいインスタンスを生成します。
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// toRecipeResponse はエンティティをAPIレスポンス形式に変換します。
func toRecipeResponse(r *entity.Recipe) api.Recipe {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return api.Recipe{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		CookingTime:  r.CookingTime,
		RecipeImg:    r.RecipeImg,
		UserOwner:    r.UserOwner,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toRecipeList はエンティティのスライスをAPIレスポンス形式に変換します。
func toRecipeList(recipes []entity.Recipe) []api.Recipe {
	out := make([]api.Recipe, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return out
}

// parseIDParam はパスパラメータを数値IDに変換します。
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// List は公開済み（approved）レシピの一覧を取得するAPIです。認証不要です。
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.uc.ListVisible(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeList(recipes))
}

// Search は名前または説明でレシピを検索するAPIです。
// - queryパラメータ未指定時は400を返却
func (h *RecipeHandler) Search(c *gin.Context) {
	recipes, err := h.uc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "search query is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeList(recipes))
}

// GetByID はレシピを1件取得するAPIです。
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	recipe, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Create は新規レシピを作成するAPIです。
// 所有者は認証済みユーザーに固定され、ステータスは常にpendingで作成されます。
func (h *RecipeHandler) Create(c *gin.Context) {
	var req api.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create recipe validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	ownerID := c.GetUint(jwtmw.ContextUserID)

	recipe, err := h.uc.Create(c.Request.Context(), &entity.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		RecipeImg:    req.RecipeImg,
		UserOwner:    ownerID,
	})
	if err != nil {
		slog.Error("create recipe failed", "error", err, "owner", ownerID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "could not create recipe"})
		return
	}
	slog.Info("recipe created", "recipe_id", recipe.ID, "owner", ownerID)
	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// ListByOwner は指定ユーザーのレシピをステータスに関係なく返すAPIです。
func (h *RecipeHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	recipes, err := h.uc.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeList(recipes))
}

// Update はレシピのコンテンツフィールドを部分更新するAPIです。
// 所有者チェックは行いません（現行仕様の観測可能な挙動を維持）。
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req api.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Ingredients != nil {
		fields["ingredients"] = *req.Ingredients
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}
	if req.CookingTime != nil {
		fields["cooking_time"] = *req.CookingTime
	}
	if req.RecipeImg != nil {
		fields["recipe_img"] = *req.RecipeImg
	}

	recipe, err := h.uc.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Delete はレシピを削除するAPIです。
// 保存コレクション側の参照は残ります（参照切れは許容される挙動）。
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Info("recipe deleted", "recipe_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "recipe deleted"})
}
