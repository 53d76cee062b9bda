package otp

import (
	"context"

	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/smsmock/services/otp MessageLogger

// MessageLogger records the audit message of an issued code
type MessageLogger interface {
	LogMessage(ctx context.Context, message *models.Message) error
}
