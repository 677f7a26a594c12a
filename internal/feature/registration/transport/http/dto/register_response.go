package dto

// RegisterResp は登録成功時のレスポンスボディを表します。
// Session はトークン発行が無効な構成では省略されます。
type RegisterResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Session string `json:"session,omitempty"`
}

// ErrorResp はエラーレスポンスのボディを表します。
type ErrorResp struct {
	Detail string `json:"detail"`
}

// GreetingResp は疎通確認用GETエンドポイントのレスポンスボディを表します。
type GreetingResp struct {
	Message string `json:"message"`
}
