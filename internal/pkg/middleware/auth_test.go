package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/constants"
	appcontext "github.com/piresc/smsmock/internal/pkg/context"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	principal *models.Principal
	user      *models.User
	project   *models.Project
	err       error
	gotToken  string
}

func (s *stubAuthenticator) AuthenticateAccess(ctx context.Context, token string) (*models.Principal, error) {
	s.gotToken = token
	return s.principal, s.err
}

func (s *stubAuthenticator) AuthenticateRefresh(ctx context.Context, token string) (*models.User, error) {
	s.gotToken = token
	return s.user, s.err
}

func (s *stubAuthenticator) AuthenticateAPIKey(ctx context.Context, key string) (*models.Project, error) {
	s.gotToken = key
	return s.project, s.err
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJWTAuthMiddleware(t *testing.T) {
	principal := &models.Principal{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		header         string
		authErr        error
		expectedStatus int
		expectedError  string
	}{
		{name: "Valid token", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "Missing header", header: "", expectedStatus: http.StatusUnauthorized, expectedError: "Authentication required"},
		{name: "Wrong scheme", header: "Token good", expectedStatus: http.StatusUnauthorized, expectedError: "Authentication required"},
		{name: "Expired token", header: "Bearer old", authErr: apperror.ErrTokenExpired, expectedStatus: http.StatusUnauthorized, expectedError: "Token expired"},
		{name: "Invalid token", header: "Bearer forged", authErr: apperror.ErrInvalidToken, expectedStatus: http.StatusUnauthorized, expectedError: "Invalid token"},
		{name: "Deleted user", header: "Bearer good", authErr: apperror.ErrUserNotFound, expectedStatus: http.StatusUnauthorized, expectedError: "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			auth := &stubAuthenticator{principal: principal, err: tt.authErr}
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := JWTAuthMiddleware(auth)(func(c echo.Context) error {
				got, ok := CurrentPrincipal(c)
				require.True(t, ok)
				fromCtx, ok := appcontext.GetPrincipal(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, got, fromCtx)
				return c.JSON(http.StatusOK, got)
			})

			// Act
			err := handler(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec).Error)
			}
		})
	}
}

func TestRefreshTokenMiddleware(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice", TokenVersion: 4}

	t.Run("Missing cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, constants.RefreshTokenCookiePath, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RefreshTokenMiddleware(&stubAuthenticator{user: user})(func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Refresh token required", decodeError(t, rec).Error)
	})

	t.Run("Revoked token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, constants.RefreshTokenCookiePath, nil)
		req.AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "stale"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		auth := &stubAuthenticator{err: apperror.ErrTokenRevoked}
		err := RefreshTokenMiddleware(auth)(func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "stale", auth.gotToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Refresh token revoked", decodeError(t, rec).Error)
	})

	t.Run("Valid token attaches user", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, constants.RefreshTokenCookiePath, nil)
		req.AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "current"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RefreshTokenMiddleware(&stubAuthenticator{user: user})(func(c echo.Context) error {
			got, ok := RefreshUser(c)
			require.True(t, ok)
			assert.Equal(t, int64(4), got.TokenVersion)
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	project := &models.Project{ID: uuid.New(), Name: "Default Project"}

	tests := []struct {
		name           string
		key            string
		authErr        error
		expectedStatus int
		expectedError  string
	}{
		{name: "Active key", key: "abc123", expectedStatus: http.StatusOK},
		{name: "Missing key", key: "", expectedStatus: http.StatusUnauthorized, expectedError: "API key required"},
		{name: "Deactivated key", key: "abc123", authErr: apperror.ErrInvalidAPIKey, expectedStatus: http.StatusUnauthorized, expectedError: "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/messages/send-otp", nil)
			if tt.key != "" {
				req.Header.Set(constants.HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			auth := &stubAuthenticator{project: project, err: tt.authErr}
			err := APIKeyMiddleware(auth)(func(c echo.Context) error {
				got, ok := CurrentProject(c)
				require.True(t, ok)
				assert.Equal(t, project.ID, got.ID)
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec).Error)
			}
		})
	}
}
