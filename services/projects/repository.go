package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/smsmock/services/projects ProjectRepo

// ProjectRepo defines the project and API key store
type ProjectRepo interface {
	// CreateProject inserts the project together with its first key
	CreateProject(ctx context.Context, project *models.Project, key *models.APIKey) error
	ListProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error)
	GetProjectByOwner(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	// DeleteProject removes the project with its keys and messages
	DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error

	CreateAPIKey(ctx context.Context, key *models.APIKey) error
	ListAPIKeysByProject(ctx context.Context, projectID uuid.UUID) ([]*models.APIKey, error)
	// GetAPIKeyWithOwner returns the key and the id of the user owning its project
	GetAPIKeyWithOwner(ctx context.Context, keyID uuid.UUID) (*models.APIKey, uuid.UUID, error)
	UpdateAPIKey(ctx context.Context, key *models.APIKey) error
	DeleteAPIKey(ctx context.Context, keyID uuid.UUID) error
}
