package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

const insertAPIKeyQuery = `
	INSERT INTO api_keys (id, project_id, key, name, is_active, created_at)
	VALUES (:id, :project_id, :key, :name, :is_active, :created_at)
`

const apiKeyColumns = `id, project_id, key, name, is_active, created_at, last_used_at`

// CreateAPIKey inserts a key
func (r *ProjectRepo) CreateAPIKey(ctx context.Context, key *models.APIKey) error {
	if _, err := r.db.NamedExecContext(ctx, insertAPIKeyQuery, key); err != nil {
		return fmt.Errorf("failed to insert api key: %w", err)
	}
	return nil
}

// ListAPIKeysByProject returns the project's keys, oldest first
func (r *ProjectRepo) ListAPIKeysByProject(ctx context.Context, projectID uuid.UUID) ([]*models.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE project_id = $1 ORDER BY created_at`

	keys := []*models.APIKey{}
	if err := r.db.SelectContext(ctx, &keys, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

// GetAPIKeyWithOwner returns a key and the owner of its project
func (r *ProjectRepo) GetAPIKeyWithOwner(ctx context.Context, keyID uuid.UUID) (*models.APIKey, uuid.UUID, error) {
	query := `
		SELECT k.id, k.project_id, k.key, k.name, k.is_active, k.created_at, k.last_used_at, p.owner_id
		FROM api_keys k
		JOIN projects p ON p.id = k.project_id
		WHERE k.id = $1
	`

	var key models.APIKey
	var ownerID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, keyID).Scan(
		&key.ID,
		&key.ProjectID,
		&key.Key,
		&key.Name,
		&key.IsActive,
		&key.CreatedAt,
		&key.LastUsed,
		&ownerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, uuid.Nil, apperror.ErrAPIKeyNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &key, ownerID, nil
}

// UpdateAPIKey writes name and active flag
func (r *ProjectRepo) UpdateAPIKey(ctx context.Context, key *models.APIKey) error {
	query := `UPDATE api_keys SET name = :name, is_active = :is_active WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to update api key: %w", err)
	}
	return requireAffected(result, apperror.ErrAPIKeyNotFound)
}

// DeleteAPIKey removes a key
func (r *ProjectRepo) DeleteAPIKey(ctx context.Context, keyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = $1`, keyID)
	if err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}
	return requireAffected(result, apperror.ErrAPIKeyNotFound)
}
