package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// ProjectRepo implements projects.ProjectRepo over Postgres
type ProjectRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProjectRepo creates a new project repository instance
func NewProjectRepo(cfg *models.Config, db *sqlx.DB) *ProjectRepo {
	return &ProjectRepo{
		cfg: cfg,
		db:  db,
	}
}

const projectColumns = `id, owner_id, name, description, created_at, updated_at`

// CreateProject inserts a project and its initial API key
func (r *ProjectRepo) CreateProject(ctx context.Context, project *models.Project, key *models.APIKey) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	projectQuery := `
		INSERT INTO projects (id, owner_id, name, description, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :description, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, projectQuery, project); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	if _, err := tx.NamedExecContext(ctx, insertAPIKeyQuery, key); err != nil {
		return fmt.Errorf("failed to insert api key: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListProjectsByOwner returns the owner's projects, newest first
func (r *ProjectRepo) ListProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`

	projects := []*models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectByOwner returns the project only when it belongs to ownerID
func (r *ProjectRepo) GetProjectByOwner(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND owner_id = $2`

	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, projectID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// UpdateProject writes name and description
func (r *ProjectRepo) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET name = :name, description = :description, updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id
	`
	result, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return requireAffected(result, apperror.ErrProjectNotFound)
}

// DeleteProject removes the project, its keys and its messages in one transaction
func (r *ProjectRepo) DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id uuid.UUID
	err = tx.GetContext(ctx, &id, `SELECT id FROM projects WHERE id = $1 AND owner_id = $2 FOR UPDATE`, projectID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrProjectNotFound
		}
		return fmt.Errorf("failed to lock project: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM api_keys WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete api keys: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
