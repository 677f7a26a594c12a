package router

import (
	"github.com/gin-gonic/gin"

	registhandler "tracker_backend/internal/feature/registration/transport/handler"
	"tracker_backend/internal/platform/http/handler"
)

// NewRouter はアプリケーションの全ルートを登録したgin.Engineを返します。
func NewRouter(regist *registhandler.RegisterHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 登録APIは /api プレフィックス配下に置く
	api := r.Group("/api")
	{
		// 疎通確認用GET
		api.GET("/user_regist", regist.Greet)
		// 新規ユーザー登録
		api.POST("/user_regist", regist.Register)
	}

	return r
}
