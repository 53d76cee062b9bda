package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/smsmock/services/messages MessageGW,ProjectReader

// MessageGW publishes message log events
type MessageGW interface {
	PublishMessageLogged(ctx context.Context, event *models.MessageEvent) error
}

// ProjectReader resolves a project only for its owner
type ProjectReader interface {
	GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error)
}
