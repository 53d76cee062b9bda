package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/constants"
	"github.com/piresc/smsmock/internal/pkg/database"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// createScript writes the hash only when the key is free and lets Redis
// drop it at the expiry instant.
// KEYS[1] otp key, ARGV[1] expiry in unix ms, ARGV[2..] field values
var createScript = redis.NewScript(fmt.Sprintf(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1],
	'%s', ARGV[2], '%s', ARGV[3], '%s', ARGV[4], '%s', ARGV[5],
	'%s', ARGV[6], '%s', ARGV[1], '%s', '0', '%s', ARGV[7])
redis.call('PEXPIREAT', KEYS[1], ARGV[1])
return 1
`,
	constants.FieldID, constants.FieldProjectID, constants.FieldPhone, constants.FieldCode,
	constants.FieldPurpose, constants.FieldExpiresAt, constants.FieldVerified, constants.FieldCreatedAt))

// consumeScript flips verified to 1 only for an unverified code whose expiry
// is still ahead of ARGV[1], and returns the hash.
var consumeScript = redis.NewScript(fmt.Sprintf(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
if redis.call('HGET', KEYS[1], '%[1]s') ~= '0' then
	return false
end
local expiresAt = tonumber(redis.call('HGET', KEYS[1], '%[2]s'))
if expiresAt == nil or expiresAt <= tonumber(ARGV[1]) then
	return false
end
redis.call('HSET', KEYS[1], '%[1]s', '1')
return redis.call('HGETALL', KEYS[1])
`, constants.FieldVerified, constants.FieldExpiresAt))

// OTPRepo implements otp.OTPRepo on Redis hashes
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository instance
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

func otpKey(projectID uuid.UUID, phone, code string) string {
	return fmt.Sprintf(constants.KeyOTP, projectID.String(), phone, code)
}

// Create stores an OTP as a hash keyed by project, phone and code
func (r *OTPRepo) Create(ctx context.Context, otp *models.OTP) (bool, error) {
	key := otpKey(otp.ProjectID, otp.Phone, otp.Code)

	created, err := createScript.Run(ctx, r.redisClient.Client, []string{key},
		otp.ExpiresAt.UnixMilli(),
		otp.ID.String(),
		otp.ProjectID.String(),
		otp.Phone,
		otp.Code,
		otp.Purpose,
		otp.CreatedAt.UnixMilli(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to store OTP: %w", err)
	}

	return created == 1, nil
}

// Consume atomically verifies a code
func (r *OTPRepo) Consume(ctx context.Context, projectID uuid.UUID, phone, code string, now time.Time) (*models.OTP, error) {
	key := otpKey(projectID, phone, code)

	values, err := consumeScript.Run(ctx, r.redisClient.Client, []string{key}, now.UnixMilli()).StringSlice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.ErrInvalidOrExpiredOTP
		}
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}

	return parseOTP(values)
}

func parseOTP(values []string) (*models.OTP, error) {
	fields := make(map[string]string, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		fields[values[i]] = values[i+1]
	}

	id, err := uuid.Parse(fields[constants.FieldID])
	if err != nil {
		return nil, fmt.Errorf("invalid stored OTP id: %w", err)
	}
	projectID, err := uuid.Parse(fields[constants.FieldProjectID])
	if err != nil {
		return nil, fmt.Errorf("invalid stored OTP project id: %w", err)
	}
	expiresAt, err := strconv.ParseInt(fields[constants.FieldExpiresAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored OTP expiry: %w", err)
	}
	createdAt, err := strconv.ParseInt(fields[constants.FieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored OTP creation time: %w", err)
	}

	return &models.OTP{
		ID:        id,
		ProjectID: projectID,
		Phone:     fields[constants.FieldPhone],
		Code:      fields[constants.FieldCode],
		Purpose:   fields[constants.FieldPurpose],
		ExpiresAt: time.UnixMilli(expiresAt).UTC(),
		Verified:  fields[constants.FieldVerified] == "1",
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}, nil
}
