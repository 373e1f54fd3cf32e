package auth

import (
	"fmt"

	"catering/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// PasswordHasher hashes credentials with bcrypt and verifies them against
// stored hashes.
type PasswordHasher struct{}

// NewPasswordHasher creates a bcrypt password hasher.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash returns the bcrypt hash of the plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Compare checks the plaintext password against a stored hash. A mismatch
// surfaces as errs.ErrUnauthenticated so login failures are uniform.
func (h *PasswordHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}
	return nil
}
