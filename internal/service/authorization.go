package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Authorize returns nil when user holds the required role, otherwise an
// error matching [ErrPermissionDenied].
func Authorize(user models.User, required models.Role) error {
	if user.HasRole(required) {
		return nil
	}
	return fmt.Errorf("%w: role %s required", ErrPermissionDenied, required)
}
