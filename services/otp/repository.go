package otp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/smsmock/services/otp OTPRepo

// OTPRepo defines the passcode store
type OTPRepo interface {
	// Create stores the code unless an identical (project, phone, code)
	// entry already exists, in which case it reports false.
	Create(ctx context.Context, otp *models.OTP) (bool, error)

	// Consume marks a matching unverified, unexpired code as verified and
	// returns it. No match yields ErrInvalidOrExpiredOTP.
	Consume(ctx context.Context, projectID uuid.UUID, phone, code string, now time.Time) (*models.OTP, error)
}
