package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/messages"
)

// MessageHandler handles HTTP requests for the message log
type MessageHandler struct {
	messageUC messages.MessageUC
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUC messages.MessageUC) *MessageHandler {
	return &MessageHandler{
		messageUC: messageUC,
	}
}

// deleteAllResponse is the body of a bulk delete
type deleteAllResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// SendMessage logs an outbound message for the API key's project
func (h *MessageHandler) SendMessage(c echo.Context) error {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrAPIKeyRequired)
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for message send",
			logger.Err(err),
			logger.String("endpoint", "SendMessage"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), project, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message logged successfully", message)
}

// ListMessages returns a project's messages, newest first
func (h *MessageHandler) ListMessages(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	list, err := h.messageUC.ListMessages(c.Request().Context(), principal.ID, projectID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// DeleteMessage removes one message
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid message ID")
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), principal.ID, messageID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Message deleted successfully", nil)
}

// DeleteProjectMessages clears a project's message log
func (h *MessageHandler) DeleteProjectMessages(c echo.Context) error {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrUnauthenticated)
	}
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	deleted, err := h.messageUC.DeleteProjectMessages(c.Request().Context(), principal.ID, projectID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, deleteAllResponse{
		Success:      true,
		Message:      fmt.Sprintf("Deleted %d messages", deleted),
		DeletedCount: deleted,
	})
}
