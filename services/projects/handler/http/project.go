package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/projects"
)

// ProjectHandler handles HTTP requests for projects and their API keys
type ProjectHandler struct {
	projectUC projects.ProjectUC
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUC projects.ProjectUC) *ProjectHandler {
	return &ProjectHandler{
		projectUC: projectUC,
	}
}

// CreateProject creates a project with an initial API key
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for project creation",
			logger.Err(err),
			logger.String("endpoint", "CreateProject"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.projectUC.CreateProject(c.Request().Context(), principal.ID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// ListProjects returns the caller's projects
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}

	list, err := h.projectUC.ListProjects(c.Request().Context(), principal.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetProject returns one of the caller's projects
func (h *ProjectHandler) GetProject(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), principal.ID, projectID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// UpdateProject changes name and/or description
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req models.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for project update",
			logger.Err(err),
			logger.String("endpoint", "UpdateProject"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	project, err := h.projectUC.UpdateProject(c.Request().Context(), principal.ID, projectID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project with its keys and messages
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), principal.ID, projectID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
