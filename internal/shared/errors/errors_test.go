package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup", "TEST-0001"), ErrorTypeConflict, http.StatusConflict},
		{"collision", NewUniquenessCollisionError("retry"), ErrorTypeUniquenessCollision, http.StatusConflict},
		{"allocation", NewAllocationFailureError("db down"), ErrorTypeAllocationFailure, http.StatusInternalServerError},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("bad"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"rate limited", NewTooManyRequestsError("slow down"), ErrorTypeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestConflictErrorCarriesDetails(t *testing.T) {
	err := NewConflictError("pending ticket exists", "AGUASCALIENTES-0001")
	assert.Equal(t, "AGUASCALIENTES-0001", err.Details)
	assert.Equal(t, "conflict: pending ticket exists (AGUASCALIENTES-0001)", err.Error())
}

func TestUniquenessCollisionIsRetryable(t *testing.T) {
	err := NewUniquenessCollisionError("try again")
	assert.True(t, err.Retryable)
	assert.True(t, IsUniquenessCollisionError(err))
	assert.False(t, IsConflictError(err))
}

func TestFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("invalid submission", map[string]string{"mobile": "must be 10 digits"})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "must be 10 digits", err.Fields["mobile"])
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("ticket not found"))
	assert.True(t, IsNotFoundError(wrapped))
	assert.NotNil(t, GetAppError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'X' for key 'number'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: tickets.number")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
