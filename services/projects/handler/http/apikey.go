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
)

// CreateAPIKey adds a key to one of the caller's projects
func (h *ProjectHandler) CreateAPIKey(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req models.CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for API key creation",
			logger.Err(err),
			logger.String("endpoint", "CreateAPIKey"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	key, err := h.projectUC.CreateAPIKey(c.Request().Context(), principal.ID, projectID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, key)
}

// ListAPIKeys returns the keys of one of the caller's projects
func (h *ProjectHandler) ListAPIKeys(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	keys, err := h.projectUC.ListAPIKeys(c.Request().Context(), principal.ID, projectID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, keys)
}

// UpdateAPIKey renames or enables/disables a key
func (h *ProjectHandler) UpdateAPIKey(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid API key ID")
	}

	var req models.UpdateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for API key update",
			logger.Err(err),
			logger.String("endpoint", "UpdateAPIKey"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	key, err := h.projectUC.UpdateAPIKey(c.Request().Context(), principal.ID, keyID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, key)
}

// DeleteAPIKey removes a key
func (h *ProjectHandler) DeleteAPIKey(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid API key ID")
	}

	if err := h.projectUC.DeleteAPIKey(c.Request().Context(), principal.ID, keyID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "API key deleted successfully"})
}
