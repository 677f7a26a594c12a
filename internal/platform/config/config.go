// Package config はアプリケーションレベルの設定を環境変数から読み込みます。
// グローバル変数ではなく明示的なConfig値として組み立て、起動時に一度だけ検証します。
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the application-level settings.
// Database connection settings live in platform/db.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// SecretKey signs issued tokens. Required when TokenIssuance is true.
	SecretKey string

	// TokenIssuance toggles the optional token step of the registration flow.
	TokenIssuance bool

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration
}

// ErrMissingSecretKey はトークン発行が有効なのに署名鍵が未設定の場合のエラーです。
// 起動時の致命的な設定エラーであり、リクエスト単位で回復するものではありません。
var ErrMissingSecretKey = errors.New("SECRET_KEY is required when token issuance is enabled")

// Load は環境変数から設定を読み込みます。
// TOKEN_ISSUANCEはデフォルト有効で、"false"等の明示的な指定でのみ無効になります。
func Load() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		TokenIssuance: true,
		TokenTTL:      60 * time.Minute,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("TOKEN_ISSUANCE"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.TokenIssuance = enabled
		}
	}
	if v := os.Getenv("TOKEN_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}
	return cfg
}

// Validate は設定の整合性を検証します。mainはエラー時に起動を中断します。
func (c Config) Validate() error {
	if c.TokenIssuance && c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}
