package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	recipeentity "letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/saved/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockSavedUsecase is a mock implementation of the SavedUsecase interface.
type mockSavedUsecase struct {
	SaveFunc             func(ctx context.Context, userID, recipeID uint) ([]uint, error)
	ListSavedIDsFunc     func(ctx context.Context, userID uint) ([]uint, error)
	ListSavedRecipesFunc func(ctx context.Context, userID uint) ([]recipeentity.Recipe, error)
	RemoveFunc           func(ctx context.Context, userID, recipeID uint) ([]uint, error)
}

func (m *mockSavedUsecase) Save(ctx context.Context, userID, recipeID uint) ([]uint, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, recipeID)
	}
	return []uint{recipeID}, nil
}

func (m *mockSavedUsecase) ListSavedIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListSavedIDsFunc != nil {
		return m.ListSavedIDsFunc(ctx, userID)
	}
	return []uint{}, nil
}

func (m *mockSavedUsecase) ListSavedRecipes(ctx context.Context, userID uint) ([]recipeentity.Recipe, error) {
	if m.ListSavedRecipesFunc != nil {
		return m.ListSavedRecipesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSavedUsecase) Remove(ctx context.Context, userID, recipeID uint) ([]uint, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, recipeID)
	}
	return []uint{}, nil
}

func TestSavedHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockSaveFunc   func(ctx context.Context, userID, recipeID uint) ([]uint, error)
		expectedStatus int
		expectedIDs    []any
	}{
		{
			name:        "success: recipe saved",
			requestBody: gin.H{"userID": 1, "recipeID": 5},
			mockSaveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				return []uint{3, 5}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedIDs:    []any{float64(3), float64(5)},
		},
		{
			name:        "success: duplicate save keeps both entries",
			requestBody: gin.H{"userID": 1, "recipeID": 5},
			mockSaveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				return []uint{5, 5}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedIDs:    []any{float64(5), float64(5)},
		},
		{
			name:           "failure: missing recipeID",
			requestBody:    gin.H{"userID": 1},
			mockSaveFunc:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: user not found",
			requestBody: gin.H{"userID": 99, "recipeID": 5},
			mockSaveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				return nil, usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "failure: recipe not found",
			requestBody: gin.H{"userID": 1, "recipeID": 99},
			mockSaveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				return nil, usecase.ErrRecipeNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSavedHandler(&mockSavedUsecase{SaveFunc: tt.mockSaveFunc})

			router := gin.New()
			router.PUT("/saved", handler.Save)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPut, "/saved", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedIDs != nil {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedIDs, resp["savedRecipes"])
			}
		})
	}
}

func TestSavedHandler_ListIDs(t *testing.T) {
	t.Run("empty collection serializes as empty array", func(t *testing.T) {
		handler := NewSavedHandler(&mockSavedUsecase{})

		router := gin.New()
		router.GET("/saved/ids/:userId", handler.ListIDs)

		req, _ := http.NewRequest(http.MethodGet, "/saved/ids/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"savedRecipes":[]}`, w.Body.String())
	})

	t.Run("user not found", func(t *testing.T) {
		handler := NewSavedHandler(&mockSavedUsecase{
			ListSavedIDsFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				return nil, usecase.ErrUserNotFound
			},
		})

		router := gin.New()
		router.GET("/saved/ids/:userId", handler.ListIDs)

		req, _ := http.NewRequest(http.MethodGet, "/saved/ids/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		handler := NewSavedHandler(&mockSavedUsecase{})

		router := gin.New()
		router.GET("/saved/ids/:userId", handler.ListIDs)

		req, _ := http.NewRequest(http.MethodGet, "/saved/ids/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSavedHandler_ListRecipes(t *testing.T) {
	handler := NewSavedHandler(&mockSavedUsecase{
		ListSavedRecipesFunc: func(ctx context.Context, userID uint) ([]recipeentity.Recipe, error) {
			return []recipeentity.Recipe{
				{ID: 3, Name: "Survivor", Status: recipeentity.StatusApproved},
			}, nil
		},
	})

	router := gin.New()
	router.GET("/saved/:userId", handler.ListRecipes)

	req, _ := http.NewRequest(http.MethodGet, "/saved/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Survivor", resp[0]["name"])
	assert.Equal(t, []any{}, resp[0]["ingredients"])
}

func TestSavedHandler_Remove(t *testing.T) {
	t.Run("success: returns remaining ids", func(t *testing.T) {
		handler := NewSavedHandler(&mockSavedUsecase{
			RemoveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, uint(5), recipeID)
				return []uint{3}, nil
			},
		})

		router := gin.New()
		router.DELETE("/saved/:recipeId/:userId", handler.Remove)

		req, _ := http.NewRequest(http.MethodDelete, "/saved/5/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"savedRecipes":[3]}`, w.Body.String())
	})

	t.Run("user not found", func(t *testing.T) {
		handler := NewSavedHandler(&mockSavedUsecase{
			RemoveFunc: func(ctx context.Context, userID, recipeID uint) ([]uint, error) {
				return nil, usecase.ErrUserNotFound
			},
		})

		router := gin.New()
		router.DELETE("/saved/:recipeId/:userId", handler.Remove)

		req, _ := http.NewRequest(http.MethodDelete, "/saved/5/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
