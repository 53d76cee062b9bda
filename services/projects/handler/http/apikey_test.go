package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

func TestCreateAPIKey_Handler(t *testing.T) {
	handler, mockUC := setupProjectHandler(t)
	principal := &models.Principal{ID: uuid.New()}
	projectID := uuid.New()
	c, rec := newUserContext(http.MethodPost, "/api/keys/project/"+projectID.String(), `{"name":"ci"}`, principal)
	c.SetParamNames("projectId")
	c.SetParamValues(projectID.String())

	mockUC.EXPECT().
		CreateAPIKey(gomock.Any(), principal.ID, projectID, &models.CreateAPIKeyRequest{Name: "ci"}).
		Return(&models.APIKey{ID: uuid.New(), ProjectID: projectID, Key: "k", Name: "ci", IsActive: true}, nil)

	require.NoError(t, handler.CreateAPIKey(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isActive":true`)
}

func TestListAPIKeys_InvalidProjectID(t *testing.T) {
	handler, _ := setupProjectHandler(t)
	c, rec := newUserContext(http.MethodGet, "/api/keys/project/x", "", &models.Principal{ID: uuid.New()})
	c.SetParamNames("projectId")
	c.SetParamValues("x")

	require.NoError(t, handler.ListAPIKeys(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAPIKey_Forbidden(t *testing.T) {
	handler, mockUC := setupProjectHandler(t)
	principal := &models.Principal{ID: uuid.New()}
	keyID := uuid.New()
	c, rec := newUserContext(http.MethodPut, "/api/keys/"+keyID.String(), `{"isActive":false}`, principal)
	c.SetParamNames("id")
	c.SetParamValues(keyID.String())

	mockUC.EXPECT().
		UpdateAPIKey(gomock.Any(), principal.ID, keyID, gomock.Any()).
		Return(nil, apperror.ErrForbidden)

	require.NoError(t, handler.UpdateAPIKey(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteAPIKey_Handler(t *testing.T) {
	principal := &models.Principal{ID: uuid.New()}
	keyID := uuid.New()

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "deleted", ucErr: nil, wantStatus: http.StatusOK},
		{name: "missing", ucErr: apperror.ErrAPIKeyNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign", ucErr: apperror.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := setupProjectHandler(t)
			c, rec := newUserContext(http.MethodDelete, "/api/keys/"+keyID.String(), "", principal)
			c.SetParamNames("id")
			c.SetParamValues(keyID.String())

			mockUC.EXPECT().DeleteAPIKey(gomock.Any(), principal.ID, keyID).Return(tt.ucErr)

			require.NoError(t, handler.DeleteAPIKey(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
