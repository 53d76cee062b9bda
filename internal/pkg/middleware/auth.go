package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/constants"
	appcontext "github.com/piresc/smsmock/internal/pkg/context"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

// Echo context keys
const (
	PrincipalKey   = "principal"
	ProjectKey     = "project"
	RefreshUserKey = "refresh_user"
)

// SessionAuthenticator resolves users from access and refresh tokens
type SessionAuthenticator interface {
	AuthenticateAccess(ctx context.Context, token string) (*models.Principal, error)
	AuthenticateRefresh(ctx context.Context, token string) (*models.User, error)
}

// APIKeyAuthenticator resolves the owning project of an API key
type APIKeyAuthenticator interface {
	AuthenticateAPIKey(ctx context.Context, key string) (*models.Project, error)
}

// JWTAuthMiddleware requires a valid bearer access token
func JWTAuthMiddleware(auth SessionAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := utils.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
			}

			principal, err := auth.AuthenticateAccess(c.Request().Context(), token)
			if err != nil {
				return utils.AppErrorResponse(c, err)
			}

			c.Set(PrincipalKey, principal)
			c.SetRequest(c.Request().WithContext(appcontext.WithPrincipal(c.Request().Context(), principal)))

			return next(c)
		}
	}
}

// RefreshTokenMiddleware requires a valid refresh token cookie whose version
// matches the stored one
func RefreshTokenMiddleware(auth SessionAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(constants.RefreshTokenCookie)
			if err != nil || cookie.Value == "" {
				return utils.AppErrorResponse(c, apperror.ErrRefreshRequired)
			}

			user, err := auth.AuthenticateRefresh(c.Request().Context(), cookie.Value)
			if err != nil {
				return utils.AppErrorResponse(c, err)
			}

			principal := user.Principal()
			c.Set(RefreshUserKey, user)
			c.Set(PrincipalKey, principal)
			c.SetRequest(c.Request().WithContext(appcontext.WithPrincipal(c.Request().Context(), principal)))

			return next(c)
		}
	}
}

// APIKeyMiddleware requires an active key in the X-API-Key header
func APIKeyMiddleware(auth APIKeyAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(constants.HeaderAPIKey)
			if key == "" {
				return utils.AppErrorResponse(c, apperror.ErrAPIKeyRequired)
			}

			project, err := auth.AuthenticateAPIKey(c.Request().Context(), key)
			if err != nil {
				return utils.AppErrorResponse(c, err)
			}

			c.Set(ProjectKey, project)
			c.SetRequest(c.Request().WithContext(appcontext.WithProject(c.Request().Context(), project)))

			return next(c)
		}
	}
}

// CurrentPrincipal returns the user attached by JWTAuthMiddleware or RefreshTokenMiddleware
func CurrentPrincipal(c echo.Context) (*models.Principal, bool) {
	principal, ok := c.Get(PrincipalKey).(*models.Principal)
	return principal, ok && principal != nil
}

// CurrentProject returns the project attached by APIKeyMiddleware
func CurrentProject(c echo.Context) (*models.Project, bool) {
	project, ok := c.Get(ProjectKey).(*models.Project)
	return project, ok && project != nil
}

// RefreshUser returns the user record attached by RefreshTokenMiddleware
func RefreshUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(RefreshUserKey).(*models.User)
	return user, ok && user != nil
}
