package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/services/projects/handler/http"
)

// Handler registers the project and API key endpoints
type Handler struct {
	projectHandler *http.ProjectHandler
	sessionAuth    middleware.SessionAuthenticator
}

// NewHandler creates the project route handler
func NewHandler(projectHandler *http.ProjectHandler, sessionAuth middleware.SessionAuthenticator) *Handler {
	return &Handler{
		projectHandler: projectHandler,
		sessionAuth:    sessionAuth,
	}
}

// RegisterRoutes registers the session protected project routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.sessionAuth)

	projectGroup := e.Group("/api/projects")
	projectGroup.POST("", h.projectHandler.CreateProject, auth)
	projectGroup.GET("", h.projectHandler.ListProjects, auth)
	projectGroup.GET("/:id", h.projectHandler.GetProject, auth)
	projectGroup.PUT("/:id", h.projectHandler.UpdateProject, auth)
	projectGroup.DELETE("/:id", h.projectHandler.DeleteProject, auth)

	keyGroup := e.Group("/api/keys")
	keyGroup.POST("/project/:projectId", h.projectHandler.CreateAPIKey, auth)
	keyGroup.GET("/project/:projectId", h.projectHandler.ListAPIKeys, auth)
	keyGroup.PUT("/:id", h.projectHandler.UpdateAPIKey, auth)
	keyGroup.DELETE("/:id", h.projectHandler.DeleteAPIKey, auth)
}
