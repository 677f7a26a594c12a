package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"tracker_backend/internal/app/router"
	registadapters "tracker_backend/internal/feature/registration/adapters"
	registhandler "tracker_backend/internal/feature/registration/transport/handler"
	registusecase "tracker_backend/internal/feature/registration/usecase"
	"tracker_backend/internal/platform/config"
	"tracker_backend/internal/platform/db"
	jwtauth "tracker_backend/internal/platform/jwt"
	"tracker_backend/internal/platform/password"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定読み込み。署名鍵の欠落は起動時に検出して中断する
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Repository
	userRepo := registadapters.NewUserMySQL(gdb)

	// パスワードハッシャーとトークン発行（発行はオプション）
	hasher := password.NewBcryptHasher(password.DefaultCost)
	var tokens registusecase.TokenIssuer
	if cfg.TokenIssuance {
		tokens = jwtauth.NewIssuer(cfg.SecretKey, cfg.TokenTTL)
	}

	// Usecase
	registUC := registusecase.NewRegisterUsecase(userRepo, hasher, tokens)

	// Handler
	registH := registhandler.NewRegisterHandler(registUC)

	// ルータ生成
	r := router.NewRouter(registH)

	// CORS追加
	r.Use(cors.Default())

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
