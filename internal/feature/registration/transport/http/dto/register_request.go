// Package dto はregistrationフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は /api/user_regist エンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーションします（必須フィールド、メール形式、パスワード長）。
// 郵便番号は先頭のゼロを保持するため文字列として受け取ります。
type RegisterReq struct {
	Mail           string `json:"mail" binding:"required,email"`
	PenName        string `json:"pen_name" binding:"required,max=64"`
	RealName       string `json:"real_name" binding:"required,max=255"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
	Zipcode        string `json:"zipcode" binding:"required,max=16"`
	Prefectures    string `json:"prefectures" binding:"required,max=255"`
	Municipalities string `json:"municipalities" binding:"required,max=255"`
	TownName       string `json:"town_name" binding:"required,max=255"`
	Address        string `json:"address" binding:"required,max=255"`
	Obj            string `json:"obj" binding:"omitempty,max=255"`
}
