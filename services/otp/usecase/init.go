package usecase

import (
	"time"

	"github.com/piresc/smsmock/internal/pkg/metrics"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/otp"
)

// OTPUC implements the OTP usecase
type OTPUC struct {
	otpRepo      otp.OTPRepo
	messages     otp.MessageLogger
	metrics      *metrics.Metrics
	cfg          *models.Config
	now          func() time.Time
	generateCode func() (string, error)
}

// NewOTPUC creates a new OTP usecase
func NewOTPUC(
	otpRepo otp.OTPRepo,
	messages otp.MessageLogger,
	m *metrics.Metrics,
	cfg *models.Config,
) *OTPUC {
	return &OTPUC{
		otpRepo:      otpRepo,
		messages:     messages,
		metrics:      m,
		cfg:          cfg,
		now:          models.Now,
		generateCode: utils.GenerateOTPCode,
	}
}
