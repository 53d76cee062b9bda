package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

const uniqueViolation = "23505"

const userColumns = `id, username, email, password_hash, token_version, created_at, updated_at`

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByEmail retrieves a user by email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *AuthRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether either identifier is taken
func (r *AuthRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// CreateAccount inserts the user, its default project and API key
func (r *AuthRepo) CreateAccount(ctx context.Context, user *models.User, project *models.Project, key *models.APIKey) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (id, username, email, password_hash, token_version, created_at, updated_at)
		VALUES (:id, :username, :email, :password_hash, :token_version, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, userQuery, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	projectQuery := `
		INSERT INTO projects (id, owner_id, name, description, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :description, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, projectQuery, project); err != nil {
		return fmt.Errorf("failed to insert default project: %w", err)
	}

	keyQuery := `
		INSERT INTO api_keys (id, project_id, key, name, is_active, created_at)
		VALUES (:id, :project_id, :key, :name, :is_active, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, keyQuery, key); err != nil {
		return fmt.Errorf("failed to insert default api key: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTokenVersionBump increments token_version and runs fn with the new
// value inside the same transaction
func (r *AuthRepo) WithTokenVersionBump(ctx context.Context, userID uuid.UUID, fn func(version int64) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE users SET token_version = token_version + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING token_version
	`
	var version int64
	if err := tx.QueryRowxContext(ctx, query, userID).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrUserNotFound
		}
		return fmt.Errorf("failed to bump token version: %w", err)
	}

	if err := fn(version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
