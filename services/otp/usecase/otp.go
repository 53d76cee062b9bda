package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

// maxCodeAttempts bounds regeneration when a fresh code collides with an
// outstanding one for the same phone
const maxCodeAttempts = 5

var errCodeSpaceExhausted = errors.New("could not allocate a unique OTP code")

// SendOTP issues a new code for a phone within the project. Earlier codes
// for the same phone stay valid until they expire or are used.
func (u *OTPUC) SendOTP(ctx context.Context, project *models.Project, req *models.SendOTPRequest) (resp *models.SendOTPResponse, err error) {
	defer func() { u.metrics.RecordOTP("send", err) }()

	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		purpose = u.cfg.OTP.DefaultPurpose
	}

	now := u.now()
	record := &models.OTP{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Phone:     phone,
		Purpose:   purpose,
		ExpiresAt: now.Add(u.cfg.OTP.TTL),
		CreatedAt: now,
	}

	if err := u.store(ctx, record); err != nil {
		return nil, err
	}

	if !u.cfg.App.IsProduction() {
		logger.Debug("Generated OTP",
			logger.String("otp_id", record.ID.String()),
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.String("otp_code", record.Code))
	}

	u.logAudit(ctx, record)

	resp = &models.SendOTPResponse{
		OTPID:     record.ID,
		Phone:     phone,
		Purpose:   purpose,
		ExpiresAt: record.ExpiresAt,
	}
	if !u.cfg.App.IsProduction() {
		resp.Code = record.Code
	}
	return resp, nil
}

// VerifyOTP consumes a code. Wrong, expired, reused and foreign codes all
// fail with the same error.
func (u *OTPUC) VerifyOTP(ctx context.Context, project *models.Project, req *models.VerifyOTPRequest) (resp *models.VerifyOTPResponse, err error) {
	defer func() { u.metrics.RecordOTP("verify", err) }()

	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, apperror.Validation("Phone and code are required")
	}

	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	record, err := u.otpRepo.Consume(ctx, project.ID, phone, strings.TrimSpace(req.Code), u.now())
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "OTP verified",
		logger.String("otp_id", record.ID.String()),
		logger.String("project_id", project.ID.String()))

	return &models.VerifyOTPResponse{
		Verified: true,
		Phone:    record.Phone,
		Purpose:  record.Purpose,
	}, nil
}

func (u *OTPUC) store(ctx context.Context, record *models.OTP) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := u.generateCode()
		if err != nil {
			return err
		}
		record.Code = code

		created, err := u.otpRepo.Create(ctx, record)
		if err != nil {
			return err
		}
		if created {
			return nil
		}
		u.metrics.RecordOTPCollision()
	}
	return fmt.Errorf("failed to store OTP: %w", errCodeSpaceExhausted)
}

// logAudit records the issued code in the project's message log. Failures
// are logged and do not fail the send.
func (u *OTPUC) logAudit(ctx context.Context, record *models.OTP) {
	body := "Your OTP is " + record.Code
	if record.Purpose != "" {
		body += " for " + record.Purpose
	}

	message := &models.Message{
		ID:        uuid.New(),
		ProjectID: record.ProjectID,
		From:      models.SystemSender,
		To:        record.Phone,
		Body:      body,
		Direction: models.DirectionOutbound,
		Status:    models.MessageStatusSent,
		Metadata: models.Metadata{
			"isOTP": true,
			"otpId": record.ID.String(),
		},
		CreatedAt: record.CreatedAt,
	}

	if err := u.messages.LogMessage(ctx, message); err != nil {
		logger.WarnCtx(ctx, "Failed to log OTP message",
			logger.String("otp_id", record.ID.String()),
			logger.Err(err))
	}
}
