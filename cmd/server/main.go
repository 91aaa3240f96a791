package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"letscook_backend/internal/app/di"
	"letscook_backend/internal/app/router"
	aihandler "letscook_backend/internal/feature/airecipe/transport/handler"
	aiusecase "letscook_backend/internal/feature/airecipe/usecase"
	authadapters "letscook_backend/internal/feature/auth/adapters"
	authhandler "letscook_backend/internal/feature/auth/transport/handler"
	authusecase "letscook_backend/internal/feature/auth/usecase"
	recipehandler "letscook_backend/internal/feature/recipes/transport/handler"
	recipeusecase "letscook_backend/internal/feature/recipes/usecase"
	savedadapters "letscook_backend/internal/feature/saved/adapters"
	savedhandler "letscook_backend/internal/feature/saved/transport/handler"
	savedusecase "letscook_backend/internal/feature/saved/usecase"
	infradb "letscook_backend/internal/platform/db"
	jwtmw "letscook_backend/internal/platform/jwt"
	infraredis "letscook_backend/internal/platform/redis"
)

const jwtExpiration = 24 * time.Hour

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(secret, jwtExpiration)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	recipeRepo := di.NewRecipeRepository(rdb, db) // Redisキャッシュでラップ
	savedRepo := savedadapters.NewSavedPostgres(db)

	// 外部サービス（未設定ならnilで縮退運転）
	generator := di.NewDraftGenerator(ctx)
	screener := di.NewImageScreener(ctx)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	recipeUC := recipeusecase.NewRecipeUsecase(recipeRepo)
	moderationUC := recipeusecase.NewModerationUsecase(recipeRepo, screener)
	savedUC := savedusecase.NewSavedUsecase(savedRepo)
	aiUC := aiusecase.NewAIRecipeUsecase(generator, di.NewDraftRateLimiter())

	// 管理者アカウントの初期化（既に存在する場合は何もしない）
	if err := authUC.SeedAdmin(ctx); err != nil {
		slog.Error("failed to seed admin user", "error", err)
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipeH := recipehandler.NewRecipeHandler(recipeUC)
	moderationH := recipehandler.NewModerationHandler(moderationUC)
	savedH := savedhandler.NewSavedHandler(savedUC)
	aiH := aihandler.NewAIRecipeHandler(aiUC)

	// ルータ生成
	router := router.NewRouter(authH, recipeH, moderationH, savedH, aiH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
