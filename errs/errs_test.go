package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"wrapped not found", fmt.Errorf("project x: %w", ErrNotFound), http.StatusNotFound, ErrNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound, ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, ErrAlreadyExists},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: profiles.email (2067)"), http.StatusConflict, ErrAlreadyExists},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_profiles_email"`), http.StatusConflict, ErrAlreadyExists},
		{"closed", errors.New("sql: database is closed"), http.StatusServiceUnavailable, ErrDatabaseConnection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "profile", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.is)
		})
	}

	err := NewDatabaseError("list", "projects", errors.New("syntax error"))
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestNotFoundAndAlreadyExistsCarryDetails(t *testing.T) {
	notFound := NewDatabaseError("find", "project", gorm.ErrRecordNotFound)
	assert.Equal(t, NewNotFound("project", "Failed to find project"), notFound)
	assert.True(t, IsNotFound(notFound))

	cause := errors.New("UNIQUE constraint failed: profiles.email")
	exists := NewDatabaseError("create", "profile", cause)
	assert.Equal(t, "Failed to create profile", exists.Details)
	assert.Equal(t, cause, exists.Cause)
	assert.ErrorIs(t, exists, ErrAlreadyExists)
	assert.Equal(t, "profile already exists: Failed to create profile", exists.Error())
}

func TestValidationErrors(t *testing.T) {
	missing := NewValidationError("title", "is required")
	assert.True(t, IsMissingRequiredFieldError(missing))
	assert.Equal(t, "title", missing.Field)
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)

	invalid := NewValidationError("rating", "must be between 1 and 5")
	assert.True(t, IsInvalidFieldError(invalid))
	assert.Contains(t, invalid.Error(), "must be between 1 and 5")
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewInternalErrorWithCause("query failed", errors.New("boom"))
	outer := NewInternalErrorWithCause("list projects", inner)
	assert.Equal(t, "list projects -> query failed -> boom", outer.GetFullError())
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsInvalidTokenError(NewExpiredTokenError()))
	assert.True(t, IsInvalidTokenError(NewMissingTokenError()))
	assert.True(t, IsInsufficientRoleError(NewInsufficientRoleError("admin")))
	assert.Equal(t, http.StatusForbidden, NewInsufficientRoleError("admin").StatusCode)
	assert.False(t, IsNotFound(NewInvalidCredentialsError()))
}
