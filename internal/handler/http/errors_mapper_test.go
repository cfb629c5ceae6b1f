// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrUserNotFound), http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{utils.ErrInvalidToken, http.StatusUnauthorized},
		{service.ErrPermissionDenied, http.StatusForbidden},
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{utils.ErrEmptySignKey, http.StatusInternalServerError},
		{errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError_HidesInternals(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp 10.0.0.5:5432", store.ErrExecutingQuery)
	assert.Equal(t, "Internal Server Error", messageFromError(err))
	assert.Equal(t, "permission denied", messageFromError(fmt.Errorf("%w: role ADMIN required", service.ErrPermissionDenied)))
}
