package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"connection exception", pgError(pgerrcode.ConnectionException), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"wrapped retryable", fmt.Errorf("ctx: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.CheckViolation)))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(errors.New("duplicate")))
}
