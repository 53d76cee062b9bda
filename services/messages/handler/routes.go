package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/services/messages/handler/http"
)

// Handler registers the message log endpoints
type Handler struct {
	messageHandler *http.MessageHandler
	sessionAuth    middleware.SessionAuthenticator
	apiKeyAuth     middleware.APIKeyAuthenticator
}

// NewHandler creates the message route handler
func NewHandler(
	messageHandler *http.MessageHandler,
	sessionAuth middleware.SessionAuthenticator,
	apiKeyAuth middleware.APIKeyAuthenticator,
) *Handler {
	return &Handler{
		messageHandler: messageHandler,
		sessionAuth:    sessionAuth,
		apiKeyAuth:     apiKeyAuth,
	}
}

// RegisterRoutes registers the message routes. Sending uses the API key,
// the dashboard routes use the session.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	apiKeyAuth := middleware.APIKeyMiddleware(h.apiKeyAuth)
	sessionAuth := middleware.JWTAuthMiddleware(h.sessionAuth)

	e.POST("/api/messages/send", h.messageHandler.SendMessage, apiKeyAuth)

	e.GET("/api/messages/project/:projectId", h.messageHandler.ListMessages, sessionAuth)
	e.DELETE("/api/messages/project/:projectId", h.messageHandler.DeleteProjectMessages, sessionAuth)
	e.DELETE("/api/messages/:messageId", h.messageHandler.DeleteMessage, sessionAuth)
}
