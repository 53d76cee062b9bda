package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/services/auth"
	"github.com/piresc/smsmock/services/auth/handler/http"
)

// Handler registers the auth endpoints
type Handler struct {
	authHandler *http.AuthHandler
	authUC      auth.AuthUC
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler, authUC auth.AuthUC) *Handler {
	return &Handler{
		authHandler: authHandler,
		authUC:      authUC,
	}
}

// RegisterRoutes registers the session lifecycle routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")

	// Public routes
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// The refresh cookie is only sent to this path
	authGroup.POST("/refresh-token", h.authHandler.RefreshToken, middleware.RefreshTokenMiddleware(h.authUC))

	// Protected routes; middleware is attached per route so unknown paths
	// under /api/auth stay 404
	sessionAuth := middleware.JWTAuthMiddleware(h.authUC)
	authGroup.POST("/logout", h.authHandler.Logout, sessionAuth)
	authGroup.GET("/me", h.authHandler.Me, sessionAuth)
}
