package otp

import (
	"context"

	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/smsmock/services/otp OTPUC

// OTPUC represents the one-time passcode usecase
type OTPUC interface {
	SendOTP(ctx context.Context, project *models.Project, req *models.SendOTPRequest) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, project *models.Project, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
}
