package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every stored password.
const PasswordHashCost = 10

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are hashed and
// verified on their first MaxPasswordBytes bytes.
const MaxPasswordBytes = 72

// PasswordHasher hashes and verifies user passwords with bcrypt.
// Every call to Hash uses a fresh random salt, so hashing the same password
// twice yields different values.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher using [PasswordHashCost].
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: PasswordHashCost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches hash.
// A mismatch is reported as (false, nil); a malformed hash or any other
// bcrypt failure is returned as an error.
func (h *PasswordHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error verifying password: %w", err)
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		return b[:MaxPasswordBytes]
	}
	return b
}
