package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/smsmock/services/messages MessageUC

// MessageUC represents the message log usecase
type MessageUC interface {
	SendMessage(ctx context.Context, project *models.Project, req *models.SendMessageRequest) (*models.Message, error)
	LogMessage(ctx context.Context, message *models.Message) error
	ListMessages(ctx context.Context, ownerID, projectID uuid.UUID) ([]*models.Message, error)
	DeleteMessage(ctx context.Context, ownerID, messageID uuid.UUID) error
	DeleteProjectMessages(ctx context.Context, ownerID, projectID uuid.UUID) (int64, error)
	MarkDelivered(ctx context.Context, event *models.MessageEvent) error
	PurgeExpired(ctx context.Context) (int64, error)
}
