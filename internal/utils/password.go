package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password at the given cost.
// The salt is generated by bcrypt and embedded in the digest.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the bcrypt passwordHash.
//
// A mismatch, an empty hash or a malformed hash all yield false. The digest
// comparison inside bcrypt runs in constant time.
func CheckPasswordHash(password, passwordHash string) bool {
	if passwordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
