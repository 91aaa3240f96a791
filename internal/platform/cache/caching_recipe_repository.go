// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"letscook_backend/internal/feature/recipes/domain/entity"
	"letscook_backend/internal/feature/recipes/usecase"
)

// CachingRecipeRepository decorates a RecipeRepository with Redis caching of
// its list queries. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Single-record reads
// and all writes pass through; every write invalidates the whole namespace,
// because any status, content or ownership change can affect any listing.
type CachingRecipeRepository struct {
	inner     usecase.RecipeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRecipeRepositoryがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*CachingRecipeRepository)(nil)

// NewCachingRecipeRepository decorates a RecipeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "recipes".
func NewCachingRecipeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeRepository, namespace string) *CachingRecipeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a recipe and invalidates the list caches.
func (c *CachingRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Create(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID bypasses the cache; single-record reads are cheap.
func (c *CachingRecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByStatus retrieves recipes by status, checking cache first then falling
// back to the database.
func (c *CachingRecipeRepository) FindByStatus(ctx context.Context, status entity.Status) ([]entity.Recipe, error) {
	return c.cachedList(ctx, c.key("status", string(status)), func() ([]entity.Recipe, error) {
		return c.inner.FindByStatus(ctx, status)
	})
}

// FindByOwner retrieves an owner's recipes, checking cache first then falling
// back to the database.
func (c *CachingRecipeRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Recipe, error) {
	return c.cachedList(ctx, c.key("owner", fmt.Sprint(ownerID)), func() ([]entity.Recipe, error) {
		return c.inner.FindByOwner(ctx, ownerID)
	})
}

// Search retrieves recipes matching a query, checking cache first then
// falling back to the database.
func (c *CachingRecipeRepository) Search(ctx context.Context, query string) ([]entity.Recipe, error) {
	return c.cachedList(ctx, c.key("search", safe(query)), func() ([]entity.Recipe, error) {
		return c.inner.Search(ctx, query)
	})
}

// Update updates a recipe and invalidates the list caches.
func (c *CachingRecipeRepository) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Recipe, error) {
	recipe, err := c.inner.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return recipe, nil
}

// UpdateStatus updates a recipe's status and invalidates the list caches.
func (c *CachingRecipeRepository) UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Recipe, error) {
	recipe, err := c.inner.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return recipe, nil
}

// Delete deletes a recipe and invalidates the list caches.
func (c *CachingRecipeRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// cachedList implements the get-or-load-and-store pattern for list queries.
func (c *CachingRecipeRepository) cachedList(ctx context.Context, key string, load func() ([]entity.Recipe, error)) ([]entity.Recipe, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Recipe
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops every cached list in the namespace. Best effort: a failed
// invalidation only shortens cache freshness, never correctness of writes.
func (c *CachingRecipeRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// key generates a cache key for a specific list query.
func (c *CachingRecipeRepository) key(kind, value string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, kind, value)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRecipeRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes free-text input for use in a Redis key. URL escaping keeps
// the mapping injective, so distinct queries never share a cache entry.
func safe(s string) string {
	return url.QueryEscape(s)
}
