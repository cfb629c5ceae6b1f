// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used by [TokenMinter.Mint] when no positive ttl is given.
const DefaultTokenTTL = 15 * time.Minute

var (
	// ErrEmptySignKey is returned by [NewTokenMinter] when no signing secret
	// is configured. It is a configuration error and must abort startup.
	ErrEmptySignKey = errors.New("empty token sign key")

	// ErrInvalidToken is returned by [TokenMinter.Parse] for any token that
	// fails signature, issuer, expiry or claim checks.
	ErrInvalidToken = errors.New("token is expired or invalid")
)

// TokenMinter issues and verifies HMAC-SHA256 signed JWT session tokens.
//
// The signing key is injected once at construction and only read afterwards,
// so a single TokenMinter is safe for concurrent use.
type TokenMinter struct {
	signKey []byte
	issuer  string
	now     func() time.Time
}

// NewTokenMinter returns a TokenMinter that signs with signKey and stamps
// issuer into the "iss" claim. An empty signKey yields [ErrEmptySignKey].
func NewTokenMinter(signKey, issuer string) (*TokenMinter, error) {
	if strings.TrimSpace(signKey) == "" {
		return nil, ErrEmptySignKey
	}

	return &TokenMinter{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
	}, nil
}

// Mint signs claims plus the registered "exp", "iat" and "iss" claims.
//
// claims is copied and never mutated. "exp" is set to now + ttl; a ttl that is
// not positive falls back to [DefaultTokenTTL]. Caller supplied "exp", "iat"
// and "iss" values are overwritten.
//
// Example usage:
//
//	token, err := minter.Mint(map[string]any{"sub": "alice@example.com"}, time.Hour)
func (m *TokenMinter) Mint(claims map[string]any, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := m.now()
	expiresAt := time.Unix(now.Add(ttl).Unix(), 0)

	mapClaims := make(jwt.MapClaims, len(claims)+3)
	maps.Copy(mapClaims, claims)
	mapClaims["exp"] = expiresAt.Unix()
	mapClaims["iat"] = now.Unix()
	if m.issuer != "" {
		mapClaims["iss"] = m.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	subject, _ := mapClaims.GetSubject()

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    expiresAt,
	}, nil
}

// Parse validates tokenString and extracts its subject and expiry.
//
// Validation includes the HMAC signing method, the signature, the "exp" claim
// (required), the issuer (when the minter has one) and a non-empty "sub".
// Every failure is reported as [ErrInvalidToken] wrapping the cause.
func (m *TokenMinter) Parse(tokenString string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return models.Token{}, fmt.Errorf("%w: no expiry", ErrInvalidToken)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    expiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}
