// Package jwtauth は登録成功時に返すJWTトークンの発行と検証を提供します。
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 60 * time.Minute

// Claims represents the payload embedded in an issued token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer defines the interface for token issuance.
type Issuer interface {
	// Issue creates a signed token for the given user.
	Issue(userID uint) (string, error)
}

// issuer implements the Issuer interface using HS256.
type issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a new token issuer with the provided secret and ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed JWT whose expiry is issue time plus the configured ttl.
func (i *issuer) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the signature and expiry of a token issued with the same
// secret and returns its claims. Only HMAC-signed tokens are accepted.
func Parse(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
