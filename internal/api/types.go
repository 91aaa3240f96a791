// Package api defines the request and response types of the HTTP API.
package api

// ErrorResponse is the uniform error payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest is the request body for POST /signup.
// It uses Gin's binding tags for validation (required, email format, password length).
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public projection of a user account.
// The password hash is never serialized.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token string   `json:"access_token"`
	User  UserInfo `json:"user"`
}

// Recipe is the public projection of a recipe record.
type Recipe struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  int      `json:"cookingTime"`
	RecipeImg    string   `json:"recipeImg"`
	UserOwner    uint     `json:"userOwner"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

// CreateRecipeRequest is the request body for POST /recipes.
// The owner and the initial status are set server-side.
type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required,max=255"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions string   `json:"instructions" binding:"required"`
	CookingTime  int      `json:"cookingTime" binding:"gte=0"`
	RecipeImg    string   `json:"recipeImg"`
}

// UpdateRecipeRequest is the request body for PUT /recipes/:id.
// Nil fields are left untouched.
type UpdateRecipeRequest struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Ingredients  *[]string `json:"ingredients,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	CookingTime  *int      `json:"cookingTime,omitempty"`
	RecipeImg    *string   `json:"recipeImg,omitempty"`
}

// SaveRecipeRequest is the request body for PUT /saved.
type SaveRecipeRequest struct {
	UserID   uint `json:"userID" binding:"required"`
	RecipeID uint `json:"recipeID" binding:"required"`
}

// SavedIDsResponse lists the recipe IDs a user has saved, in save order.
// The same ID may appear more than once.
type SavedIDsResponse struct {
	SavedRecipes []uint `json:"savedRecipes"`
}

// StatusUpdateRequest is the request body for PUT /admin/status/:recipeId.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ScreenResponse is the image screening verdict for an admin.
type ScreenResponse struct {
	RecipeID uint   `json:"recipeId"`
	Adult    string `json:"adult"`
	Violence string `json:"violence"`
	Racy     string `json:"racy"`
	Flagged  bool   `json:"flagged"`
}

// GenerateRecipeRequest is the request body for POST /ai/generate-recipe.
type GenerateRecipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Cuisine     string   `json:"cuisine"`
	CookingTime string   `json:"cookingTime"`
	Difficulty  string   `json:"difficulty"`
}

// RecipeDraft is the structured draft returned by the AI proxy.
type RecipeDraft struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  int      `json:"cookingTime"`
	Difficulty   string   `json:"difficulty"`
	Calories     int      `json:"calories"`
	ImageURL     string   `json:"imageUrl"`
}
