package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUID strings in the canonical
// 36-character form. The randomness comes from crypto/rand, which makes the
// values suitable as unguessable API keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random UUID. It panics only if crypto/rand fails.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
