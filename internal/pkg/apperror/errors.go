// Package apperror defines the error kinds the HTTP layer maps to status codes.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindInvalidCredential
	KindExpired
	KindRevoked
	KindNotFound
	KindForbidden
	KindValidation
	KindConflict
)

// Error is a classified application error carrying a client-facing message
type Error struct {
	Kind    Kind
	Message string
	status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error
func (e *Error) Status() int {
	if e.status != 0 {
		return e.status
	}
	switch e.Kind {
	case KindUnauthenticated, KindInvalidCredential, KindExpired, KindRevoked:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func withStatus(kind Kind, msg string, status int) *Error {
	return &Error{Kind: kind, Message: msg, status: status}
}

// Validation builds a 400 error with a specific message
func Validation(msg string) *Error {
	return newError(KindValidation, msg)
}

// As extracts the classified error from err. Unclassified errors are reported
// as ErrInternal so their details never reach the client.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}

// IsKind reports whether err is a classified error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Session errors
var (
	ErrUnauthenticated     = newError(KindUnauthenticated, "Authentication required")
	ErrInvalidToken        = newError(KindInvalidCredential, "Invalid token")
	ErrTokenExpired        = newError(KindExpired, "Token expired")
	ErrUserNotFound        = withStatus(KindNotFound, "User not found", http.StatusUnauthorized)
	ErrRefreshRequired     = newError(KindUnauthenticated, "Refresh token required")
	ErrRefreshExpired      = newError(KindExpired, "Refresh token expired")
	ErrInvalidRefreshToken = newError(KindInvalidCredential, "Invalid refresh token")
	ErrTokenRevoked        = newError(KindRevoked, "Refresh token revoked")
	ErrInvalidCredentials  = newError(KindInvalidCredential, "Invalid credentials")
	ErrDuplicateAccount    = newError(KindConflict, "Username or email already exists")
)

// API key errors
var (
	ErrAPIKeyRequired = newError(KindUnauthenticated, "API key required")
	ErrInvalidAPIKey  = newError(KindInvalidCredential, "Invalid API key")
)

// Domain errors
var (
	ErrInvalidPhoneNumber  = newError(KindValidation, "Invalid phone number format")
	ErrInvalidOrExpiredOTP = withStatus(KindInvalidCredential, "Invalid or expired OTP", http.StatusBadRequest)
	ErrProjectNotFound     = newError(KindNotFound, "Project not found")
	ErrAPIKeyNotFound      = newError(KindNotFound, "API key not found")
	ErrMessageNotFound     = newError(KindNotFound, "Message not found")
	ErrForbidden           = newError(KindForbidden, "Access denied")
	ErrInternal            = newError(KindInternal, "Internal server error")
)
