package router

import (
	aihandler "letscook_backend/internal/feature/airecipe/transport/handler"
	authhandler "letscook_backend/internal/feature/auth/transport/handler"
	recipehandler "letscook_backend/internal/feature/recipes/transport/handler"
	savedhandler "letscook_backend/internal/feature/saved/transport/handler"
	"letscook_backend/internal/platform/http/handler"
	jwtmw "letscook_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler,
	moderation *recipehandler.ModerationHandler, saved *savedhandler.SavedHandler,
	ai *aihandler.AIRecipeHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// 公開レシピ関連（approvedのみ見える）
	r.GET("/recipes", recipes.List)
	r.GET("/recipes/search", recipes.Search)
	r.GET("/recipes/:id", recipes.GetByID)

	// 認証必須のルート
	authed := r.Group("/")
	// リクエストヘッダーに JWT が必要になる
	authed.Use(jwtmw.AuthRequired())
	{
		// レシピ CRUD
		authed.POST("/recipes", recipes.Create)
		authed.PUT("/recipes/:id", recipes.Update)
		authed.DELETE("/recipes/:id", recipes.Delete)
		authed.GET("/recipes/user/:userId", recipes.ListByOwner)

		// 保存コレクション
		authed.PUT("/saved", saved.Save)
		authed.GET("/saved/ids/:userId", saved.ListIDs)
		authed.GET("/saved/:userId", saved.ListRecipes)
		authed.DELETE("/saved/:recipeId/:userId", saved.Remove)

		// AIレシピ草稿
		authed.POST("/ai/generate-recipe", ai.Generate)
	}

	// 管理者専用のルート（JWTのroleクレームで認可）
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired(), jwtmw.AdminRequired())
	{
		admin.GET("/pending", moderation.ListPending)
		admin.PUT("/status/:recipeId", moderation.UpdateStatus)
		admin.GET("/screen/:recipeId", moderation.ScreenImage)
	}

	return r
}
