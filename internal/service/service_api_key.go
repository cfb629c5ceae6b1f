// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// maxKeyAttempts bounds retries when a generated key collides with an
// existing one.
const maxKeyAttempts = 3

// EchoPermissionPolicy grants exactly the permissions the caller asked for.
// It does not check them against the user's role.
type EchoPermissionPolicy struct{}

// Grant returns a copy of requested in the same order.
func (EchoPermissionPolicy) Grant(_ context.Context, _ models.User, requested []string) ([]string, error) {
	if requested == nil {
		return []string{}, nil
	}
	return slices.Clone(requested), nil
}

type apiKeyService struct {
	userRepository store.UserRepository
	keyGenerator   KeyGenerator
	policy         PermissionPolicy
	keyTTL         time.Duration
	now            func() time.Time

	logger *logger.Logger
}

// APIKeyOption customizes an APIKeyService.
type APIKeyOption func(*apiKeyService)

// WithPermissionPolicy replaces the default [EchoPermissionPolicy].
func WithPermissionPolicy(policy PermissionPolicy) APIKeyOption {
	return func(s *apiKeyService) {
		s.policy = policy
	}
}

// WithClock sets the time source used to compute expiration dates.
func WithClock(now func() time.Time) APIKeyOption {
	return func(s *apiKeyService) {
		s.now = now
	}
}

// NewAPIKeyService constructs an APIKeyService. Keys expire cfg.APIKeyTTL
// after issuance, 365 days when unset.
func NewAPIKeyService(userRepository store.UserRepository, keyGenerator KeyGenerator, cfg config.App, logger *logger.Logger, opts ...APIKeyOption) APIKeyService {
	ttl := cfg.APIKeyTTL
	if ttl <= 0 {
		ttl = config.DefaultAPIKeyTTL
	}

	s := &apiKeyService{
		userRepository: userRepository,
		keyGenerator:   keyGenerator,
		policy:         EchoPermissionPolicy{},
		keyTTL:         ttl,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IssueAPIKey generates a key for an ADMIN user and stores it on the user
// record, replacing any previous key.
//
// Returns:
//   - ErrInvalidDataProvided if userID is empty.
//   - an error matching store.ErrUserNotFound for an unknown user.
//   - an error matching ErrPermissionDenied for a non-admin; nothing is written.
func (s *apiKeyService) IssueAPIKey(ctx context.Context, userID string, permissions []string) (models.APIKeyGrant, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user id provided")
		return models.APIKeyGrant{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.APIKeyGrant{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if err = Authorize(user, models.RoleAdmin); err != nil {
		log.Warn().Str("user_id", userID).Str("role", user.Role.String()).Msg("api key issuance denied")
		return models.APIKeyGrant{}, err
	}

	granted, err := s.policy.Grant(ctx, user, permissions)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("permission policy rejected request")
		return models.APIKeyGrant{}, err
	}

	key, err := s.storeNewKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("api key update failed")
		return models.APIKeyGrant{}, err
	}

	grant := models.APIKeyGrant{
		APIKey:         key,
		Permissions:    granted,
		ExpirationDate: s.now().Add(s.keyTTL),
	}
	log.Info().Str("user_id", userID).Time("expiration_date", grant.ExpirationDate).Msg("api key issued")

	return grant, nil
}

func (s *apiKeyService) storeNewKey(ctx context.Context, userID string) (string, error) {
	for range maxKeyAttempts {
		key := s.keyGenerator.Generate()

		err := s.userRepository.UpdateUserAPIKey(ctx, userID, key)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, store.ErrAPIKeyAlreadyExists) {
			return "", fmt.Errorf("api key update failed: %w", err)
		}
	}

	return "", ErrKeyGenerationFailed
}
