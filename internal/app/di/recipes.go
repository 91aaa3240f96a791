package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"letscook_backend/internal/feature/recipes/adapters"
	"letscook_backend/internal/feature/recipes/adapters/vision"
	recipeusecase "letscook_backend/internal/feature/recipes/usecase"
	"letscook_backend/internal/platform/cache"
)

// recipeCacheTTL bounds how stale a cached recipe listing may get.
const recipeCacheTTL = 5 * time.Minute

// NewRecipeRepository creates a RecipeRepository implementation.
// If Redis is available, the Postgres repository is wrapped with the
// caching decorator. Otherwise the plain repository is returned.
func NewRecipeRepository(rdb *redis.Client, db *gorm.DB) recipeusecase.RecipeRepository {
	repo := adapters.NewRecipePostgres(db)
	if rdb != nil {
		return cache.NewCachingRecipeRepository(rdb, recipeCacheTTL, repo, "recipes")
	}
	return repo
}

// NewImageScreener creates a Vision-backed safe-search screener.
// If the client cannot be created (missing credentials), it logs a warning
// and returns nil; the moderation usecase then reports screening as unavailable.
func NewImageScreener(ctx context.Context) recipeusecase.ImageScreener {
	screener, err := vision.NewSafeSearchScreener(ctx)
	if err != nil {
		slog.Warn("Vision unavailable; image screening disabled", "error", err)
		return nil
	}
	return screener
}
