package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/constants"
	"github.com/piresc/smsmock/internal/pkg/database"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*OTPRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return NewOTPRepo(&database.RedisClient{Client: client}), mr
}

func newOTP(projectID uuid.UUID, phone, code string, now time.Time) *models.OTP {
	return &models.OTP{
		ID:        uuid.New(),
		ProjectID: projectID,
		Phone:     phone,
		Code:      code,
		Purpose:   "login",
		ExpiresAt: now.Add(15 * time.Minute),
		CreatedAt: now,
	}
}

func TestCreateOTP(t *testing.T) {
	// Arrange
	repo, mr := setupOTPRepoTest(t)
	ctx := context.Background()
	now := time.Now()
	otp := newOTP(uuid.New(), "9876543210", "123456", now)

	// Act
	created, err := repo.Create(ctx, otp)

	// Assert
	require.NoError(t, err)
	assert.True(t, created)

	key := fmt.Sprintf(constants.KeyOTP, otp.ProjectID.String(), otp.Phone, otp.Code)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, otp.ID.String(), mr.HGet(key, constants.FieldID))
	assert.Equal(t, "login", mr.HGet(key, constants.FieldPurpose))
	assert.Equal(t, "0", mr.HGet(key, constants.FieldVerified))
	assert.Greater(t, mr.TTL(key), 14*time.Minute)
}

func TestCreateOTP_Collision(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)
	ctx := context.Background()
	now := time.Now()
	projectID := uuid.New()

	created, err := repo.Create(ctx, newOTP(projectID, "9876543210", "123456", now))
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Create(ctx, newOTP(projectID, "9876543210", "123456", now))

	require.NoError(t, err)
	assert.False(t, created)
}

func TestCreateOTP_CodesCoexist(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)
	ctx := context.Background()
	now := time.Now()
	projectID := uuid.New()

	first := newOTP(projectID, "9876543210", "111111", now)
	second := newOTP(projectID, "9876543210", "222222", now)
	for _, otp := range []*models.OTP{first, second} {
		created, err := repo.Create(ctx, otp)
		require.NoError(t, err)
		require.True(t, created)
	}

	got, err := repo.Consume(ctx, projectID, "9876543210", "111111", now)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = repo.Consume(ctx, projectID, "9876543210", "222222", now)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestConsumeOTP(t *testing.T) {
	now := time.Now()
	projectID := uuid.New()
	phone := "9876543210"

	testCases := []struct {
		name      string
		projectID uuid.UUID
		phone     string
		code      string
		at        time.Time
		wantErr   bool
	}{
		{name: "Correct code", projectID: projectID, phone: phone, code: "123456", at: now},
		{name: "Wrong code", projectID: projectID, phone: phone, code: "654321", at: now, wantErr: true},
		{name: "Wrong phone", projectID: projectID, phone: "9123456789", code: "123456", at: now, wantErr: true},
		{name: "Wrong project", projectID: uuid.New(), phone: phone, code: "123456", at: now, wantErr: true},
		{name: "At expiry", projectID: projectID, phone: phone, code: "123456", at: now.Add(15 * time.Minute), wantErr: true},
		{name: "After expiry", projectID: projectID, phone: phone, code: "123456", at: now.Add(16 * time.Minute), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, _ := setupOTPRepoTest(t)
			ctx := context.Background()
			stored := newOTP(projectID, phone, "123456", now)
			_, err := repo.Create(ctx, stored)
			require.NoError(t, err)

			got, err := repo.Consume(ctx, tc.projectID, tc.phone, tc.code, tc.at)

			if tc.wantErr {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, apperror.ErrInvalidOrExpiredOTP)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, got.ID)
			assert.Equal(t, projectID, got.ProjectID)
			assert.Equal(t, "login", got.Purpose)
			assert.True(t, got.Verified)
			assert.Equal(t, stored.ExpiresAt.UnixMilli(), got.ExpiresAt.UnixMilli())
		})
	}
}

func TestConsumeOTP_SingleUse(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	ctx := context.Background()
	now := time.Now()
	otp := newOTP(uuid.New(), "9876543210", "123456", now)
	_, err := repo.Create(ctx, otp)
	require.NoError(t, err)

	_, err = repo.Consume(ctx, otp.ProjectID, otp.Phone, otp.Code, now)
	require.NoError(t, err)

	_, err = repo.Consume(ctx, otp.ProjectID, otp.Phone, otp.Code, now)
	assert.ErrorIs(t, err, apperror.ErrInvalidOrExpiredOTP)

	key := fmt.Sprintf(constants.KeyOTP, otp.ProjectID.String(), otp.Phone, otp.Code)
	assert.Equal(t, "1", mr.HGet(key, constants.FieldVerified))
}

func TestConsumeOTP_PurgedByStore(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	ctx := context.Background()
	now := time.Now()
	otp := newOTP(uuid.New(), "9876543210", "123456", now)
	_, err := repo.Create(ctx, otp)
	require.NoError(t, err)

	mr.FastForward(16 * time.Minute)

	_, err = repo.Consume(ctx, otp.ProjectID, otp.Phone, otp.Code, now)
	assert.ErrorIs(t, err, apperror.ErrInvalidOrExpiredOTP)
}

func TestOTPRepo_StoreUnavailable(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	mr.Close()

	_, err := repo.Create(context.Background(), newOTP(uuid.New(), "9876543210", "123456", time.Now()))

	require.Error(t, err)
	assert.False(t, apperror.IsKind(err, apperror.KindInvalidCredential))
}
