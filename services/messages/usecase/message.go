package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/config"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

// SendMessage logs an outbound message for the project of the calling API key
func (u *MessageUC) SendMessage(ctx context.Context, project *models.Project, req *models.SendMessageRequest) (*models.Message, error) {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" || req.Body == "" {
		return nil, apperror.Validation("From, to, and body are required")
	}
	if utils.CharLen(req.Body) > models.MaxMessageBodyLen {
		return nil, apperror.Validation("Message body must be at most 1600 characters")
	}

	if from != models.SystemSender {
		normalized, err := utils.NormalizePhone(from)
		if err != nil {
			return nil, err
		}
		from = normalized
	}
	to, err := utils.NormalizePhone(to)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:        uuid.New(),
		ProjectID: project.ID,
		From:      from,
		To:        to,
		Body:      req.Body,
		Direction: models.DirectionOutbound,
		Status:    models.MessageStatusSent,
		Metadata:  req.Metadata,
		CreatedAt: u.now(),
	}
	if err := u.LogMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// LogMessage stores an already built message and announces it
func (u *MessageUC) LogMessage(ctx context.Context, message *models.Message) error {
	if err := u.messageRepo.Create(ctx, message); err != nil {
		return err
	}

	isOTP := message.Metadata.IsOTP()
	event := &models.MessageEvent{
		MessageID: message.ID,
		ProjectID: message.ProjectID,
		From:      message.From,
		To:        message.To,
		Direction: message.Direction,
		Status:    message.Status,
		IsOTP:     isOTP,
		CreatedAt: message.CreatedAt,
	}
	if err := u.messageGW.PublishMessageLogged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish message event",
			logger.String("message_id", message.ID.String()),
			logger.Err(err))
	}

	u.metrics.RecordMessageLogged(message.Direction, isOTP)
	return nil
}

// ListMessages returns the messages of a project owned by ownerID
func (u *MessageUC) ListMessages(ctx context.Context, ownerID, projectID uuid.UUID) ([]*models.Message, error) {
	if _, err := u.projects.GetProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return u.messageRepo.ListByProject(ctx, projectID)
}

// DeleteMessage removes one message. Messages of other users' projects are
// forbidden rather than hidden.
func (u *MessageUC) DeleteMessage(ctx context.Context, ownerID, messageID uuid.UUID) error {
	_, messageOwner, err := u.messageRepo.GetMessageWithOwner(ctx, messageID)
	if err != nil {
		return err
	}
	if messageOwner != ownerID {
		return apperror.ErrForbidden
	}
	return u.messageRepo.Delete(ctx, messageID)
}

// DeleteProjectMessages clears a project's message log
func (u *MessageUC) DeleteProjectMessages(ctx context.Context, ownerID, projectID uuid.UUID) (int64, error) {
	if _, err := u.projects.GetProject(ctx, ownerID, projectID); err != nil {
		return 0, err
	}

	deleted, err := u.messageRepo.DeleteByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Project messages deleted",
		logger.String("project_id", projectID.String()),
		logger.Int64("deleted", deleted))
	return deleted, nil
}

// MarkDelivered simulates the carrier receipt for a logged message
func (u *MessageUC) MarkDelivered(ctx context.Context, event *models.MessageEvent) error {
	if event.Status != models.MessageStatusSent {
		return nil
	}

	updated, err := u.messageRepo.MarkDelivered(ctx, event.MessageID, u.now())
	if err != nil {
		return err
	}
	if !updated {
		logger.Debug("Message no longer pending delivery",
			logger.String("message_id", event.MessageID.String()))
	}
	return nil
}

// PurgeExpired removes messages older than the retention window. A zero
// window keeps everything.
func (u *MessageUC) PurgeExpired(ctx context.Context) (int64, error) {
	window := config.RetentionWindow(u.cfg)
	if window <= 0 {
		return 0, nil
	}

	purged, err := u.messageRepo.PurgeOlderThan(ctx, u.now().Add(-window))
	if err != nil {
		return 0, err
	}

	u.metrics.RecordMessagesPurged(purged)
	if purged > 0 {
		logger.Info("Purged expired messages",
			logger.Int64("purged", purged),
			logger.Int("retention_days", u.cfg.Messages.RetentionDays))
	}
	return purged, nil
}
