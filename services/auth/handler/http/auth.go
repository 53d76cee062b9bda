package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/auth"
)

// AuthHandler handles HTTP requests for the session lifecycle
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.Err(err),
			logger.String("endpoint", "Register"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	c.SetCookie(refreshCookie(h.cfg, result.Tokens.RefreshToken, result.Tokens.RefreshExpiresAt))
	return c.JSON(http.StatusCreated, models.AuthResponse{
		User:          result.User,
		Token:         result.Tokens.AccessToken,
		DefaultAPIKey: result.DefaultAPIKey,
	})
}

// Login handles email/password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for login",
			logger.Err(err),
			logger.String("endpoint", "Login"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	c.SetCookie(refreshCookie(h.cfg, result.Tokens.RefreshToken, result.Tokens.RefreshExpiresAt))
	return c.JSON(http.StatusOK, models.AuthResponse{
		User:  result.User,
		Token: result.Tokens.AccessToken,
	})
}

// RefreshToken rotates the token pair of the user resolved from the refresh cookie
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	user, ok := middleware.RefreshUser(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrRefreshRequired)
	}

	tokens, err := h.authUC.Refresh(c.Request().Context(), user)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	c.SetCookie(refreshCookie(h.cfg, tokens.RefreshToken, tokens.RefreshExpiresAt))
	return c.JSON(http.StatusOK, models.RefreshResponse{Token: tokens.AccessToken})
}

// Logout revokes outstanding refresh tokens and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}

	if err := h.authUC.Logout(c.Request().Context(), principal.ID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	c.SetCookie(expiredRefreshCookie(h.cfg))
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}

	user, err := h.authUC.Me(c.Request().Context(), principal.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.MeResponse{User: user})
}
