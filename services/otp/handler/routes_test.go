package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/smsmock/internal/pkg/models"
	otpHTTP "github.com/piresc/smsmock/services/otp/handler/http"
	"github.com/piresc/smsmock/services/otp/mocks"
)

type rejectAllKeys struct{}

func (rejectAllKeys) AuthenticateAPIKey(ctx context.Context, key string) (*models.Project, error) {
	panic("not reached without an API key header")
}

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockOTPUC(ctrl)

	e := echo.New()
	NewHandler(otpHTTP.NewOTPHandler(mockUC), rejectAllKeys{}).RegisterRoutes(e)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"unknown path", "/api/messages/unknown", http.StatusNotFound},
		{"send otp without key", "/api/messages/send-otp", http.StatusUnauthorized},
		{"verify otp without key", "/api/messages/verify-otp", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
