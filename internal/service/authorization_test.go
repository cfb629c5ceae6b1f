package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-keeper/models"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		required models.Role
		wantErr  bool
	}{
		{"admin as admin", models.RoleAdmin, models.RoleAdmin, false},
		{"user as admin", models.RoleUser, models.RoleAdmin, true},
		{"user as user", models.RoleUser, models.RoleUser, false},
		{"empty role", "", models.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(models.User{Role: tt.role}, tt.required)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrPermissionDenied)
			assert.Equal(t, KindDenied, KindOf(err))
			assert.NotEqual(t, KindNotFound, KindOf(err))
		})
	}
}
