package usecase

import (
	"time"

	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
	"github.com/piresc/smsmock/services/projects"
)

// ProjectUC implements the project usecase
type ProjectUC struct {
	projectRepo projects.ProjectRepo
	cfg         *models.Config
	now         func() time.Time
	generateKey func() (string, error)
}

// NewProjectUC creates a new project usecase
func NewProjectUC(projectRepo projects.ProjectRepo, cfg *models.Config) *ProjectUC {
	return &ProjectUC{
		projectRepo: projectRepo,
		cfg:         cfg,
		now:         models.Now,
		generateKey: utils.GenerateAPIKey,
	}
}
