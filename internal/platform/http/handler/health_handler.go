// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// Health はレシピAPIの死活監視用 /healthz エンドポイントを処理します。
// コンテナのヘルスプローブから定期的に呼ばれる想定のため、
// 認証なしで応答し、レスポンスのキャッシュを防止します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	// GET/HEAD/OPTIONSいずれでも200または204を返す
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
