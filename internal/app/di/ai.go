// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	"letscook_backend/internal/feature/airecipe/adapters/gemini"
	aiusecase "letscook_backend/internal/feature/airecipe/usecase"
	"letscook_backend/internal/shared/ratelimiter"
)

// geminiCallsPerMinute bounds outbound Gemini traffic per process.
const geminiCallsPerMinute = 10

// NewDraftGenerator creates a Gemini-backed draft generator.
// If the client cannot be created (missing credentials), it logs a warning
// and returns nil; the usecase then reports generation as unavailable.
func NewDraftGenerator(ctx context.Context) aiusecase.DraftGenerator {
	gen, err := gemini.NewGeminiGenerator(ctx)
	if err != nil {
		slog.Warn("Gemini unavailable; recipe drafts disabled", "error", err)
		return nil
	}
	return gen
}

// NewDraftRateLimiter creates the shared limiter guarding Gemini calls.
func NewDraftRateLimiter() *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(geminiCallsPerMinute, time.Minute)
}
