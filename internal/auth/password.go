// Package auth holds credential hashing and access token handling.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost parameter.
	// Each increment doubles the time needed to hash or verify.
	DefaultCost = bcrypt.DefaultCost

	// MaxPasswordLength is the number of bytes bcrypt actually reads
	MaxPasswordLength = 72
)

// ErrPasswordEmpty is returned when password is empty
var ErrPasswordEmpty = errors.New("password cannot be empty")

// Hasher turns plaintext passwords into salted bcrypt verifiers
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the given work factor.
// Costs outside bcrypt's supported range are clamped.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the bcrypt work factor in use
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash produces a verifier for password. A fresh random salt is used on
// every call, so hashing the same password twice gives different results.
// Bytes past MaxPasswordLength are ignored, as in other bcrypt libraries.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) == 0 {
		return "", ErrPasswordEmpty
	}

	hashedBytes, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// Verify compares a plaintext password with a stored verifier.
// Mismatches, empty input and malformed verifiers all yield false.
func (h *Hasher) Verify(password, hash string) bool {
	return VerifyPassword(password, hash)
}

// HashPassword hashes a plaintext password using bcrypt at DefaultCost
func HashPassword(password string) (string, error) {
	return NewHasher(DefaultCost).Hash(password)
}

// VerifyPassword compares a plaintext password with a hashed password
// Returns true if the password matches, false otherwise
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(password))
	return err == nil
}

func truncate(password string) []byte {
	if len(password) > MaxPasswordLength {
		password = password[:MaxPasswordLength]
	}
	return []byte(password)
}
