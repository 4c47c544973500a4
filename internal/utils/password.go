package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Operator passwords are stored as bcrypt hashes only; the plaintext never
// leaves the login and registration paths.

// HashPassword derives the bcrypt hash stored for an operator password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// operator credential hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
