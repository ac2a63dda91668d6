package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/pkawa95/studytask-api/internal/domain"
)

// PasswordHasher defines the interface for one-way password transforms.
type PasswordHasher interface {
	// Hash derives a storable digest from a plaintext password.
	// Returns domain.ErrPasswordTooLong when the password exceeds 72
	// bytes, bcrypt's input limit.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure (e.g.,
	// mismatch). It never panics on malformed input.
	Compare(hashedPassword, password string) error
}

// bcryptMaxPasswordBytes is bcrypt's hard input limit; longer passwords
// are silently truncated by the algorithm, so we reject them instead.
const bcryptMaxPasswordBytes = 72

// BcryptHasher implements PasswordHasher and PasswordVerifier using
// bcrypt. The zero cost value falls back to bcrypt.DefaultCost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost. Pass 0 to
// use bcrypt's default cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the PasswordHasher interface.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.ErrEmptyPassword
	}
	if len(password) > bcryptMaxPasswordBytes {
		return "", domain.ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare implements the PasswordVerifier interface using bcrypt's
// constant-time comparison.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
