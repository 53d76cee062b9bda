package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

const maxProjectNameLen = 100

func validateProjectName(name string) error {
	if name == "" {
		return apperror.Validation("Project name is required")
	}
	if utils.CharLen(name) > maxProjectNameLen {
		return apperror.Validation("Project name must be at most 100 characters")
	}
	return nil
}

// CreateProject creates a project with an initial API key and returns the
// raw key once
func (u *ProjectUC) CreateProject(ctx context.Context, ownerID uuid.UUID, req *models.CreateProjectRequest) (*models.ProjectWithKey, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateProjectName(name); err != nil {
		return nil, err
	}

	secret, err := u.generateKey()
	if err != nil {
		return nil, err
	}

	now := u.now()
	project := &models.Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	key := &models.APIKey{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Key:       secret,
		Name:      models.InitialAPIKeyName,
		IsActive:  true,
		CreatedAt: now,
	}

	if err := u.projectRepo.CreateProject(ctx, project, key); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Project created",
		logger.String("project_id", project.ID.String()),
		logger.String("owner_id", ownerID.String()))

	return &models.ProjectWithKey{Project: project, APIKey: secret}, nil
}

// ListProjects returns the owner's projects
func (u *ProjectUC) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error) {
	return u.projectRepo.ListProjectsByOwner(ctx, ownerID)
}

// GetProject returns a project owned by ownerID. Projects of other users
// are reported as not found.
func (u *ProjectUC) GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error) {
	return u.projectRepo.GetProjectByOwner(ctx, ownerID, projectID)
}

// UpdateProject applies the provided fields
func (u *ProjectUC) UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req *models.UpdateProjectRequest) (*models.Project, error) {
	project, err := u.projectRepo.GetProjectByOwner(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateProjectName(name); err != nil {
			return nil, err
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	project.UpdatedAt = u.now()

	if err := u.projectRepo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project with its keys and messages
func (u *ProjectUC) DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error {
	if err := u.projectRepo.DeleteProject(ctx, ownerID, projectID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Project deleted",
		logger.String("project_id", projectID.String()),
		logger.String("owner_id", ownerID.String()))
	return nil
}
