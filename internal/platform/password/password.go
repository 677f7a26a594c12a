// Package password provides password hashing and verification.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost factor used when none is specified.
const DefaultCost = bcrypt.DefaultCost

// Hasher defines the interface for password hashing algorithms.
type Hasher interface {
	// Hash creates a salted digest from a plaintext password.
	// The same plaintext hashed twice yields different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether the plaintext matches the digest.
	// It returns false for a corrupt digest as well as for a wrong
	// password, without distinguishing the two.
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements the Hasher interface using bcrypt.
// The digest embeds the algorithm identifier, cost and salt, so no
// extra parameters are needed at verification time.
type BcryptHasher struct {
	cost int
}

// BcryptHasherがHasherを実装していることをコンパイル時に検証します。
var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a new bcrypt hasher with the given cost factor.
// A cost outside the valid bcrypt range is clamped into it; zero falls
// back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash creates a bcrypt digest from a plaintext password.
// bcrypt draws a fresh random salt per call.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the bcrypt digest.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
