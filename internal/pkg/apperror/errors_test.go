package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected int
	}{
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"expired", ErrTokenExpired, http.StatusUnauthorized},
		{"revoked", ErrTokenRevoked, http.StatusUnauthorized},
		{"user not found is unauthorized", ErrUserNotFound, http.StatusUnauthorized},
		{"invalid otp is bad request", ErrInvalidOrExpiredOTP, http.StatusBadRequest},
		{"duplicate account", ErrDuplicateAccount, http.StatusBadRequest},
		{"invalid phone", ErrInvalidPhoneNumber, http.StatusBadRequest},
		{"project not found", ErrProjectNotFound, http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"validation", Validation("name is required"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Status())
		})
	}
}

func TestAs(t *testing.T) {
	t.Run("wrapped classified error", func(t *testing.T) {
		err := fmt.Errorf("login: %w", ErrInvalidCredentials)
		assert.Same(t, ErrInvalidCredentials, As(err))
	})

	t.Run("unclassified error becomes internal", func(t *testing.T) {
		got := As(errors.New("pq: connection refused"))
		assert.Same(t, ErrInternal, got)
		assert.Equal(t, "Internal server error", got.Error())
	})
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(fmt.Errorf("x: %w", ErrTokenRevoked), KindRevoked))
	assert.False(t, IsKind(ErrTokenExpired, KindRevoked))
	assert.False(t, IsKind(errors.New("plain"), KindInternal))
}
