package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/services/otp/handler/http"
)

// Handler registers the OTP endpoints
type Handler struct {
	otpHandler *http.OTPHandler
	apiKeyAuth middleware.APIKeyAuthenticator
}

// NewHandler creates the OTP route handler
func NewHandler(otpHandler *http.OTPHandler, apiKeyAuth middleware.APIKeyAuthenticator) *Handler {
	return &Handler{
		otpHandler: otpHandler,
		apiKeyAuth: apiKeyAuth,
	}
}

// RegisterRoutes registers the API-key protected OTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	apiKeyAuth := middleware.APIKeyMiddleware(h.apiKeyAuth)
	e.POST("/api/messages/send-otp", h.otpHandler.SendOTP, apiKeyAuth)
	e.POST("/api/messages/verify-otp", h.otpHandler.VerifyOTP, apiKeyAuth)
}
