package messages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/smsmock/services/messages MessageRepo

// MessageRepo defines the message store
type MessageRepo interface {
	Create(ctx context.Context, message *models.Message) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Message, error)
	GetMessageWithOwner(ctx context.Context, messageID uuid.UUID) (*models.Message, uuid.UUID, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	MarkDelivered(ctx context.Context, messageID uuid.UUID, deliveredAt time.Time) (bool, error)
}
