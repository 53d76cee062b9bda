package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/smsmock/services/projects ProjectUC

// ProjectUC represents the project and API key usecase. Every operation is
// scoped to the owning user.
type ProjectUC interface {
	// projects
	CreateProject(ctx context.Context, ownerID uuid.UUID, req *models.CreateProjectRequest) (*models.ProjectWithKey, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error)
	GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error)
	UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req *models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error

	// api keys
	CreateAPIKey(ctx context.Context, ownerID, projectID uuid.UUID, req *models.CreateAPIKeyRequest) (*models.APIKey, error)
	ListAPIKeys(ctx context.Context, ownerID, projectID uuid.UUID) ([]*models.APIKey, error)
	UpdateAPIKey(ctx context.Context, ownerID, keyID uuid.UUID, req *models.UpdateAPIKeyRequest) (*models.APIKey, error)
	DeleteAPIKey(ctx context.Context, ownerID, keyID uuid.UUID) error
}
