// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// LoginTokenTTL is the lifetime of tokens returned by Authenticate.
const LoginTokenTTL = 60 * time.Minute

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is used to look users up by login handle.
	userRepository store.UserRepository

	// minter signs and verifies session tokens with the process-wide secret.
	minter *utils.TokenMinter

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The minter carries the signing
// secret, so a misconfigured key fails earlier, in [utils.NewTokenMinter].
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, minter *utils.TokenMinter, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		minter:         minter,
		logger:         logger,
	}
}

// Authenticate verifies the credentials and returns a bearer token whose
// subject is the user's email.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - an error matching store.ErrUserNotFound when no user has that handle.
//   - ErrInvalidCredentials when the password does not match.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.AuthenticationResponse, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials data provided")
		return models.AuthenticationResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByHandle(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by handle failed")
		return models.AuthenticationResponse{}, fmt.Errorf("user search by handle failed: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn().Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthenticationResponse{}, ErrInvalidCredentials
	}

	token, err := a.minter.Mint(map[string]any{"sub": user.Email}, LoginTokenTTL)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token minting failed")
		return models.AuthenticationResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("user_id", user.UserID).Time("expires_at", token.ExpiresAt).Msg("user authenticated")

	return models.AuthenticationResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// ParseToken validates a session token issued by this service.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.minter.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, err
	}
	return token, nil
}

// CurrentUser returns the user a token subject refers to. A subject that names
// no user is treated as an invalid token.
func (a *authService) CurrentUser(ctx context.Context, subject string) (models.User, error) {
	if subject == "" {
		return models.User{}, fmt.Errorf("%w: empty subject", utils.ErrInvalidToken)
	}

	user, err := a.userRepository.FindUserByHandle(ctx, subject)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Warn().Str("subject", subject).Msg("token subject has no user")
		return models.User{}, fmt.Errorf("%w: unknown subject", utils.ErrInvalidToken)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("caller lookup failed: %w", err)
	}
	return user, nil
}
