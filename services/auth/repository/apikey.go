package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// GetActiveAPIKeyWithProject looks up an active key by its secret together
// with the project it belongs to
func (r *AuthRepo) GetActiveAPIKeyWithProject(ctx context.Context, key string) (*models.APIKey, *models.Project, error) {
	query := `
		SELECT k.id, k.project_id, k.key, k.name, k.is_active, k.created_at, k.last_used_at,
			p.owner_id, p.name, p.description, p.created_at, p.updated_at
		FROM api_keys k
		JOIN projects p ON p.id = k.project_id
		WHERE k.key = $1 AND k.is_active = TRUE
	`

	var apiKey models.APIKey
	var project models.Project
	err := r.db.QueryRowxContext(ctx, query, key).Scan(
		&apiKey.ID,
		&apiKey.ProjectID,
		&apiKey.Key,
		&apiKey.Name,
		&apiKey.IsActive,
		&apiKey.CreatedAt,
		&apiKey.LastUsed,
		&project.OwnerID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperror.ErrAPIKeyNotFound
		}
		return nil, nil, fmt.Errorf("failed to get api key: %w", err)
	}
	project.ID = apiKey.ProjectID

	return &apiKey, &project, nil
}

// TouchAPIKey records the last use of a key
func (r *AuthRepo) TouchAPIKey(ctx context.Context, keyID uuid.UUID, usedAt time.Time) error {
	query := `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, usedAt, keyID); err != nil {
		return fmt.Errorf("failed to update api key last use: %w", err)
	}
	return nil
}
