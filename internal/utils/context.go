// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, password hashing, JWT session
// tokens, UUID generation, HTTP response writing and HTTP client setup.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the authenticated token subject
// (the user's login handle) is stored in the request context.
var SubjectCtxKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the authenticated subject from the context.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
