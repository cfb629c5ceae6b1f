// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

var (
	// ErrInvalidDataProvided is returned when a request misses a required
	// field or carries a value that cannot be interpreted.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned when the password does not match the
	// stored hash. The message does not reveal which field was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrPermissionDenied is returned when the caller's role does not satisfy
	// the role required by the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTokenCreationFailed wraps failures of the token minter.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrKeyGenerationFailed is returned when no unique API key could be
	// stored after several attempts.
	ErrKeyGenerationFailed = errors.New("api key generation failed")
)

// ErrorKind is the closed set of failure categories the delivery layer maps
// onto transport status codes.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindDenied
	KindConfigurationFatal
	KindInvalidInput
	KindUnavailable
)

var kindNames = map[ErrorKind]string{
	KindUnknown:            "unknown",
	KindNotFound:           "not_found",
	KindUnauthorized:       "unauthorized",
	KindDenied:             "denied",
	KindConfigurationFatal: "configuration_fatal",
	KindInvalidInput:       "invalid_input",
	KindUnavailable:        "unavailable",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// KindOf classifies err. Wrapped errors are matched with [errors.Is]; nil and
// unrecognised errors are [KindUnknown].
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, store.ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, utils.ErrInvalidToken):
		return KindUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return KindDenied
	case errors.Is(err, utils.ErrEmptySignKey),
		errors.Is(err, config.ErrEmptyTokenSignKey):
		return KindConfigurationFatal
	case errors.Is(err, ErrInvalidDataProvided):
		return KindInvalidInput
	case errors.Is(err, store.ErrStorageUnavailable):
		return KindUnavailable
	}
	return KindUnknown
}
