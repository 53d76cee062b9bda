package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

func validateKeyName(name string) error {
	if utils.CharLen(name) > models.MaxAPIKeyNameLen {
		return apperror.Validation("API key name must be at most 50 characters")
	}
	return nil
}

// CreateAPIKey adds a key to a project owned by ownerID
func (u *ProjectUC) CreateAPIKey(ctx context.Context, ownerID, projectID uuid.UUID, req *models.CreateAPIKeyRequest) (*models.APIKey, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = models.NewAPIKeyName
	}
	if err := validateKeyName(name); err != nil {
		return nil, err
	}

	project, err := u.projectRepo.GetProjectByOwner(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	secret, err := u.generateKey()
	if err != nil {
		return nil, err
	}

	key := &models.APIKey{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Key:       secret,
		Name:      name,
		IsActive:  true,
		CreatedAt: u.now(),
	}
	if err := u.projectRepo.CreateAPIKey(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

// ListAPIKeys returns the keys of a project owned by ownerID
func (u *ProjectUC) ListAPIKeys(ctx context.Context, ownerID, projectID uuid.UUID) ([]*models.APIKey, error) {
	if _, err := u.projectRepo.GetProjectByOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return u.projectRepo.ListAPIKeysByProject(ctx, projectID)
}

// UpdateAPIKey renames or toggles a key. Keys of other users' projects are
// forbidden rather than hidden.
func (u *ProjectUC) UpdateAPIKey(ctx context.Context, ownerID, keyID uuid.UUID, req *models.UpdateAPIKeyRequest) (*models.APIKey, error) {
	key, err := u.ownedKey(ctx, ownerID, keyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			if err := validateKeyName(name); err != nil {
				return nil, err
			}
			key.Name = name
		}
	}
	if req.IsActive != nil {
		key.IsActive = *req.IsActive
	}

	if err := u.projectRepo.UpdateAPIKey(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeleteAPIKey removes a key owned by ownerID
func (u *ProjectUC) DeleteAPIKey(ctx context.Context, ownerID, keyID uuid.UUID) error {
	if _, err := u.ownedKey(ctx, ownerID, keyID); err != nil {
		return err
	}
	return u.projectRepo.DeleteAPIKey(ctx, keyID)
}

func (u *ProjectUC) ownedKey(ctx context.Context, ownerID, keyID uuid.UUID) (*models.APIKey, error) {
	key, keyOwner, err := u.projectRepo.GetAPIKeyWithOwner(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if keyOwner != ownerID {
		return nil, apperror.ErrForbidden
	}
	return key, nil
}
