package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewIssuer は各種設定でIssuerが正しく生成されることを検証します。
func TestNewIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		secret      string
		ttl         time.Duration
		expectedTTL time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour, time.Hour},
		{"short ttl", "secret", time.Minute, time.Minute},
		{"zero ttl falls back to default", "secret", 0, DefaultTTL},
		{"negative ttl falls back to default", "secret", -time.Minute, DefaultTTL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := NewIssuer(tt.secret, tt.ttl)

			concrete, ok := iss.(*issuer)
			if !ok {
				t.Fatal("expected *issuer")
			}
			if string(concrete.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(concrete.secret))
			}
			if concrete.ttl != tt.expectedTTL {
				t.Errorf("expected ttl %v, got %v", tt.expectedTTL, concrete.ttl)
			}
		})
	}
}

// TestIssuer_Issue は発行されたトークンが有効で正しいクレームを含むことを検証します。
func TestIssuer_Issue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
	}{
		{"basic user", 1},
		{"large user id", 999999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iss := NewIssuer("test-secret", time.Hour)
			tokenStr, err := iss.Issue(tt.userID)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Verify the token can be parsed and carries the identity
			claims, err := Parse(tokenStr, "test-secret")
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected user_id %d, got %d", tt.userID, claims.UserID)
			}
			if claims.ExpiresAt == nil {
				t.Error("expected exp claim to be set")
			}
			if claims.IssuedAt == nil {
				t.Error("expected iat claim to be set")
			}
		})
	}
}

// TestIssuer_Issue_SigningMethod はトークンがHS256署名アルゴリズムで署名されていることを検証します。
func TestIssuer_Issue_SigningMethod(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)
	tokenStr, err := iss.Issue(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		// Verify signing method is HMAC
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Error("expected token to be valid")
	}
}

// TestIssuer_Issue_Expiration はexp・iatクレームが発行時刻+TTLの範囲内であることを検証します。
func TestIssuer_Issue_Expiration(t *testing.T) {
	t.Parallel()

	ttl := 2 * time.Hour
	iss := NewIssuer("test-secret", ttl)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := iss.Issue(1)
	after := time.Now().Truncate(time.Second).Add(time.Second) // Add 1 second buffer

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := Parse(tokenStr, "test-secret")
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	expUnix := claims.ExpiresAt.Unix()
	if expUnix < before.Add(ttl).Unix() || expUnix > after.Add(ttl).Unix() {
		t.Errorf("exp %d not in expected range [%d, %d]", expUnix, before.Add(ttl).Unix(), after.Add(ttl).Unix())
	}

	iatUnix := claims.IssuedAt.Unix()
	if iatUnix < before.Unix() || iatUnix > after.Unix() {
		t.Errorf("iat %d not in expected range [%d, %d]", iatUnix, before.Unix(), after.Unix())
	}
}

// TestParse_ExpiredToken は有効期限切れトークンの検証が失敗することを検証します。
func TestParse_ExpiredToken(t *testing.T) {
	t.Parallel()

	// Issue a token that expired in the past
	now := time.Now()
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := Parse(tokenStr, "test-secret"); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

// TestParse_WrongSecret は異なる鍵で署名されたトークンが拒否されることを検証します。
func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("correct-secret", time.Hour)
	tokenStr, err := iss.Issue(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Parse(tokenStr, "other-secret"); err == nil {
		t.Error("expected token signed with another secret to fail verification")
	}
}

// TestParse_TamperedToken は改ざんされたトークンが拒否されることを検証します。
func TestParse_TamperedToken(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)
	tokenStr, err := iss.Issue(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flip a character in the payload segment
	tampered := []byte(tokenStr)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	if _, err := Parse(string(tampered), "test-secret"); err == nil {
		t.Error("expected tampered token to fail verification")
	}
}

// TestIssuer_Issue_DifferentUsersProduceDifferentTokens は異なるユーザーに対して異なるトークンが生成されることを検証します。
func TestIssuer_Issue_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("test-secret", time.Hour)

	token1, _ := iss.Issue(1)
	token2, _ := iss.Issue(2)

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
