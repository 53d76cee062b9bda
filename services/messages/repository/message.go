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

const messageColumns = `id, project_id, from_number, to_number, body, direction, status, metadata, created_at, delivered_at`

// Create inserts a message
func (r *MessageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, project_id, from_number, to_number, body, direction, status, metadata, created_at)
		VALUES (:id, :project_id, :from_number, :to_number, :body, :direction, :status, :metadata, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListByProject returns a project's messages, newest first
func (r *MessageRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE project_id = $1 ORDER BY created_at DESC`

	messages := []*models.Message{}
	if err := r.db.SelectContext(ctx, &messages, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// GetMessageWithOwner returns a message and the owner of its project
func (r *MessageRepo) GetMessageWithOwner(ctx context.Context, messageID uuid.UUID) (*models.Message, uuid.UUID, error) {
	query := `
		SELECT m.id, m.project_id, p.owner_id
		FROM messages m
		JOIN projects p ON p.id = m.project_id
		WHERE m.id = $1
	`

	var message models.Message
	var ownerID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, messageID).Scan(&message.ID, &message.ProjectID, &ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, uuid.Nil, apperror.ErrMessageNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &message, ownerID, nil
}

// Delete removes one message
func (r *MessageRepo) Delete(ctx context.Context, messageID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperror.ErrMessageNotFound
	}
	return nil
}

// DeleteByProject removes every message of a project and reports how many
func (r *MessageRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project messages: %w", err)
	}
	return result.RowsAffected()
}

// PurgeOlderThan removes messages created before cutoff
func (r *MessageRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge messages: %w", err)
	}
	return result.RowsAffected()
}

// MarkDelivered moves a sent message to delivered. It reports false when the
// message is gone or was not in the sent state.
func (r *MessageRepo) MarkDelivered(ctx context.Context, messageID uuid.UUID, deliveredAt time.Time) (bool, error) {
	query := `
		UPDATE messages SET status = $1, delivered_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		models.MessageStatusDelivered, deliveredAt, messageID, models.MessageStatusSent)
	if err != nil {
		return false, fmt.Errorf("failed to mark message delivered: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}
