package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/middleware"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/otp"
)

// OTPHandler handles HTTP requests for one-time passcodes
type OTPHandler struct {
	otpUC otp.OTPUC
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(otpUC otp.OTPUC) *OTPHandler {
	return &OTPHandler{
		otpUC: otpUC,
	}
}

// SendOTP issues a code for the project resolved from the API key
func (h *OTPHandler) SendOTP(c echo.Context) error {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrAPIKeyRequired)
	}

	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP send",
			logger.Err(err),
			logger.String("endpoint", "SendOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.otpUC.SendOTP(c.Request().Context(), project, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "OTP sent successfully", resp)
}

// VerifyOTP consumes a code for the project resolved from the API key
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		return utils.AppErrorResponse(c, apperror.ErrAPIKeyRequired)
	}

	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.otpUC.VerifyOTP(c.Request().Context(), project, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}
