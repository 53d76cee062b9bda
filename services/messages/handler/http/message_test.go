package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/services/messages/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setupMessageHandler(t *testing.T) (*MessageHandler, *mocks.MockMessageUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMessageUC(ctrl)
	return NewMessageHandler(mockUC), mockUC
}

func TestSendMessage_Success(t *testing.T) {
	// Arrange
	handler, mockUC := setupMessageHandler(t)
	project := &models.Project{ID: uuid.New()}
	c, rec := newContext(http.MethodPost, "/api/messages/send", `{"from":"9876543211","to":"9876543210","body":"hi","metadata":{"ref":"a1"}}`)
	c.Set(middleware.ProjectKey, project)

	mockUC.EXPECT().
		SendMessage(gomock.Any(), project, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Project, req *models.SendMessageRequest) (*models.Message, error) {
			assert.Equal(t, "a1", req.Metadata["ref"])
			return &models.Message{ID: uuid.New(), ProjectID: project.ID, From: req.From, To: req.To, Body: req.Body, Status: models.MessageStatusSent}, nil
		})

	// Act
	err := handler.SendMessage(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Message logged successfully", response["message"])
	assert.Equal(t, "sent", response["data"].(map[string]interface{})["status"])
}

func TestSendMessage_NoProject(t *testing.T) {
	handler, _ := setupMessageHandler(t)
	c, rec := newContext(http.MethodPost, "/api/messages/send", `{}`)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendMessage_InvalidPhone(t *testing.T) {
	handler, mockUC := setupMessageHandler(t)
	c, rec := newContext(http.MethodPost, "/api/messages/send", `{"from":"1","to":"2","body":"hi"}`)
	c.Set(middleware.ProjectKey, &models.Project{ID: uuid.New()})

	mockUC.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidPhoneNumber)

	require.NoError(t, handler.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid phone number format")
}

func TestListMessages(t *testing.T) {
	principal := &models.Principal{ID: uuid.New()}
	projectID := uuid.New()

	tests := []struct {
		name       string
		param      string
		setup      func(m *mocks.MockMessageUC)
		wantStatus int
	}{
		{
			name:       "invalid project id",
			param:      "abc",
			setup:      func(m *mocks.MockMessageUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "foreign project",
			param: projectID.String(),
			setup: func(m *mocks.MockMessageUC) {
				m.EXPECT().ListMessages(gomock.Any(), principal.ID, projectID).Return(nil, apperror.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "owner",
			param: projectID.String(),
			setup: func(m *mocks.MockMessageUC) {
				m.EXPECT().ListMessages(gomock.Any(), principal.ID, projectID).Return([]*models.Message{{ID: uuid.New()}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := setupMessageHandler(t)
			tt.setup(mockUC)

			c, rec := newContext(http.MethodGet, "/api/messages/project/"+tt.param, "")
			c.Set(middleware.PrincipalKey, principal)
			c.SetParamNames("projectId")
			c.SetParamValues(tt.param)

			require.NoError(t, handler.ListMessages(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteMessage_Forbidden(t *testing.T) {
	handler, mockUC := setupMessageHandler(t)
	principal := &models.Principal{ID: uuid.New()}
	messageID := uuid.New()
	c, rec := newContext(http.MethodDelete, "/api/messages/"+messageID.String(), "")
	c.Set(middleware.PrincipalKey, principal)
	c.SetParamNames("messageId")
	c.SetParamValues(messageID.String())

	mockUC.EXPECT().DeleteMessage(gomock.Any(), principal.ID, messageID).Return(apperror.ErrForbidden)

	require.NoError(t, handler.DeleteMessage(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteMessage_InvalidID(t *testing.T) {
	handler, _ := setupMessageHandler(t)
	c, rec := newContext(http.MethodDelete, "/api/messages/x", "")
	c.Set(middleware.PrincipalKey, &models.Principal{ID: uuid.New()})
	c.SetParamNames("messageId")
	c.SetParamValues("x")

	require.NoError(t, handler.DeleteMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid message ID")
}

func TestDeleteProjectMessages(t *testing.T) {
	handler, mockUC := setupMessageHandler(t)
	principal := &models.Principal{ID: uuid.New()}
	projectID := uuid.New()
	c, rec := newContext(http.MethodDelete, "/api/messages/project/"+projectID.String(), "")
	c.Set(middleware.PrincipalKey, principal)
	c.SetParamNames("projectId")
	c.SetParamValues(projectID.String())

	mockUC.EXPECT().DeleteProjectMessages(gomock.Any(), principal.ID, projectID).Return(int64(3), nil)

	require.NoError(t, handler.DeleteProjectMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Deleted 3 messages","deletedCount":3}`, rec.Body.String())
}
