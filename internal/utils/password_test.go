package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordHash_MatchesOwnHash(t *testing.T) {
	passwords := []string{"correct horse battery staple", "p", "пароль", strings.Repeat("x", 72)}

	for _, p := range passwords {
		hash, err := HashPassword(p, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("unexpected error hashing %q: %v", p, err)
		}
		if hash == p {
			t.Fatal("hash must not equal the plaintext")
		}
		if !CheckPasswordHash(p, hash) {
			t.Errorf("expected %q to match its own hash", p)
		}
	}
}

func TestCheckPasswordHash_RejectsOtherPasswords(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range []string{"", "Secret", "secret ", "secre"} {
		if CheckPasswordHash(q, hash) {
			t.Errorf("expected %q not to match hash of %q", q, "secret")
		}
	}
}

func TestCheckPasswordHash_SaltedHashesDiffer(t *testing.T) {
	h1, _ := HashPassword("same", bcrypt.MinCost)
	h2, _ := HashPassword("same", bcrypt.MinCost)

	if h1 == h2 {
		t.Error("expected different salts to produce different hashes")
	}
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$10$short"} {
		if CheckPasswordHash("secret", hash) {
			t.Errorf("expected false for hash %q", hash)
		}
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("secret", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for cost above bcrypt.MaxCost")
	}
}
