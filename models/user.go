// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization attribute of a user account.
type Role string

const (
	// RoleAdmin is allowed to issue API keys.
	RoleAdmin Role = "ADMIN"

	// RoleUser is a regular account without privileged operations.
	RoleUser Role = "USER"
)

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User represents an account record owned by the user repository.
//
// PasswordHash and APIKey are credentials: both are excluded from JSON and
// must never be logged or returned to a caller.
type User struct {
	// UserID is the unique identifier of the account.
	UserID string `json:"user_id"`

	// Email is the unique login handle.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Role controls access to privileged operations.
	Role Role `json:"role"`

	// APIKey is the last issued API key, nil if none was ever issued.
	// Issuing a new key overwrites it.
	APIKey *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds exactly the given role.
func (u User) HasRole(role Role) bool {
	return u.Role == role
}
