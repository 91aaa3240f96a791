// Package handler はsavedフィーチャーのHTTPハンドラーを提供します。
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
	recipeentity "letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/saved/usecase"
)

// SavedUsecase は保存コレクション操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type SavedUsecase interface {
	Save(ctx context.Context, userID, recipeID uint) ([]uint, error)
	ListSavedIDs(ctx context.Context, userID uint) ([]uint, error)
	ListSavedRecipes(ctx context.Context, userID uint) ([]recipeentity.Recipe, error)
	Remove(ctx context.Context, userID, recipeID uint) ([]uint, error)
}

// SavedHandler は保存コレクション操作のHTTPリクエストを処理します。
type SavedHandler struct {
	uc SavedUsecase
}

// NewSavedHandler はSavedHandlerの新しいインスタンスを生成します。
func NewSavedHandler(uc SavedUsecase) *SavedHandler {
	return &SavedHandler{uc: uc}
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

// writeNotFound はNotFound系エラーを404に、それ以外を500にマップします。
func writeNotFound(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "recipe not found"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}

// Save はレシピを保存コレクションに追加するAPIです。
// 既に保存済みでも再度追加されます（重複チェックはクライアント側の責務）。
func (h *SavedHandler) Save(c *gin.Context) {
	var req api.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	ids, err := h.uc.Save(c.Request.Context(), req.UserID, req.RecipeID)
	if err != nil {
		writeNotFound(c, err)
		return
	}
	slog.Info("recipe saved", "user_id", req.UserID, "recipe_id", req.RecipeID)
	c.JSON(http.StatusCreated, api.SavedIDsResponse{SavedRecipes: ids})
}

// ListIDs はユーザーの保存レシピID列を返すAPIです。
// クライアントの「保存済み」表示の判定に使用されます。
func (h *SavedHandler) ListIDs(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	ids, err := h.uc.ListSavedIDs(c.Request.Context(), userID)
	if err != nil {
		writeNotFound(c, err)
		return
	}
	c.JSON(http.StatusOK, api.SavedIDsResponse{SavedRecipes: ids})
}

// ListRecipes はユーザーの保存レシピ本体を返すAPIです。
func (h *SavedHandler) ListRecipes(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	recipes, err := h.uc.ListSavedRecipes(c.Request.Context(), userID)
	if err != nil {
		writeNotFound(c, err)
		return
	}
	out := make([]api.Recipe, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		ingredients := r.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}
		out = append(out, api.Recipe{
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
		})
	}
	c.JSON(http.StatusOK, out)
}

// Remove はレシピを保存コレクションから削除するAPIです。
// 重複保存されていた場合もすべての行が削除されます。未保存のIDはno-opで成功します。
func (h *SavedHandler) Remove(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	ids, err := h.uc.Remove(c.Request.Context(), userID, recipeID)
	if err != nil {
		writeNotFound(c, err)
		return
	}
	slog.Info("recipe unsaved", "user_id", userID, "recipe_id", recipeID)
	c.JSON(http.StatusOK, api.SavedIDsResponse{SavedRecipes: ids})
}
