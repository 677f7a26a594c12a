// Package handler はregistrationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker_backend/internal/feature/registration/transport/http/dto"
	"tracker_backend/internal/feature/registration/usecase"
)

// RegisterUsecase は登録操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RegisterUsecase interface {
	// Register は新規ユーザーを登録し、割り当てられたIDと（構成次第で）トークンを返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterResult, error)
}

// RegisterHandler は登録操作のHTTPリクエストを処理します。
// RegisterUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type RegisterHandler struct {
	register RegisterUsecase
}

// NewRegisterHandler はRegisterHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からRegisterUsecaseを注入します。
func NewRegisterHandler(register RegisterUsecase) *RegisterHandler {
	return &RegisterHandler{register: register}
}

// Register はユーザー登録APIエンドポイント（POST /api/user_regist）を処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却（フィールド単位の詳細は返さない）
// - メール重複時は400を返却
// - その他の失敗時は内部詳細を伏せて500を返却
// - 成功時はユーザーIDと（発行されていれば）セッショントークン付きで200を返却
func (h *RegisterHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// ビジネスエラー: 一行のWARNのみでスタック詳細は残さない
		slog.Warn("registration validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Detail: "invalid request"})
		return
	}

	result, err := h.register.Register(c.Request.Context(), usecase.RegisterInput{
		Mail:           req.Mail,
		PenName:        req.PenName,
		RealName:       req.RealName,
		Password:       req.Password,
		Zipcode:        req.Zipcode,
		Prefectures:    req.Prefectures,
		Municipalities: req.Municipalities,
		TownName:       req.TownName,
		Address:        req.Address,
		Obj:            req.Obj,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("registration rejected: duplicate mail", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Detail: "email already in use"})
			return
		}
		// 予期しない障害: サーバー側には詳細を、クライアントには汎用メッセージのみを返す
		slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Detail: "internal server error"})
		return
	}

	slog.Info("user registered", "user_id", result.UserID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.RegisterResp{
		Success: true,
		Message: "User created successfully",
		UserID:  result.UserID,
		Session: result.Token,
	})
}

// Greet は疎通確認用のGET /api/user_registエンドポイントを処理します。
func (h *RegisterHandler) Greet(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GreetingResp{Message: "Hello from the registration API!"})
}
