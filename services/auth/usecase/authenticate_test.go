package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/jwt"
	"github.com/piresc/smsmock/internal/pkg/models"
)

func TestAuthUC_AuthenticateAccess(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "a", Email: "a@x.com", TokenVersion: 2}

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateAccessToken(user.ID, user.TokenVersion)
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

		principal, err := uc.AuthenticateAccess(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, user.ID, principal.ID)
	})

	t.Run("Missing token", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)

		_, err := uc.AuthenticateAccess(context.Background(), "")

		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("Garbage token", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)

		_, err := uc.AuthenticateAccess(context.Background(), "not.a.jwt")

		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})

	t.Run("Refresh token is not an access token", func(t *testing.T) {
		uc, _, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateRefreshToken(user.ID, user.TokenVersion)
		require.NoError(t, err)

		_, err = uc.AuthenticateAccess(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)
		cfg := testConfig().JWT
		cfg.AccessExpiration = -time.Minute
		token, _, err := jwt.NewManager(cfg).GenerateAccessToken(user.ID, user.TokenVersion)
		require.NoError(t, err)

		_, err = uc.AuthenticateAccess(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrTokenExpired)
	})

	t.Run("Deleted user", func(t *testing.T) {
		uc, mockRepo, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateAccessToken(user.ID, user.TokenVersion)
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(nil, apperror.ErrUserNotFound)

		_, err = uc.AuthenticateAccess(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}

func TestAuthUC_AuthenticateRefresh(t *testing.T) {
	userID := uuid.New()

	t.Run("Current version accepted", func(t *testing.T) {
		uc, mockRepo, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateRefreshToken(userID, 3)
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID, TokenVersion: 3}, nil)

		user, err := uc.AuthenticateRefresh(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Superseded version revoked", func(t *testing.T) {
		uc, mockRepo, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateRefreshToken(userID, 3)
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID, TokenVersion: 4}, nil)

		_, err = uc.AuthenticateRefresh(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrTokenRevoked)
	})

	t.Run("Missing cookie value", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)

		_, err := uc.AuthenticateRefresh(context.Background(), "")

		assert.ErrorIs(t, err, apperror.ErrRefreshRequired)
	})

	t.Run("Access token rejected", func(t *testing.T) {
		uc, _, tokens := setupAuthUC(t)
		token, _, err := tokens.GenerateAccessToken(userID, 3)
		require.NoError(t, err)

		_, err = uc.AuthenticateRefresh(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrInvalidRefreshToken)
	})

	t.Run("Expired refresh token", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)
		cfg := testConfig().JWT
		cfg.RefreshExpiration = -time.Minute
		token, _, err := jwt.NewManager(cfg).GenerateRefreshToken(userID, 3)
		require.NoError(t, err)

		_, err = uc.AuthenticateRefresh(context.Background(), token)

		assert.ErrorIs(t, err, apperror.ErrRefreshExpired)
	})
}

func TestAuthUC_LogoutRevokesRefreshToken(t *testing.T) {
	// Arrange
	uc, mockRepo, tokens := setupAuthUC(t)
	userID := uuid.New()
	stored := &models.User{ID: userID, TokenVersion: 1}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(stored, nil).AnyTimes()
	mockRepo.EXPECT().
		WithTokenVersionBump(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, fn func(int64) error) error {
			stored.TokenVersion++
			return fn(stored.TokenVersion)
		})

	refresh, _, err := tokens.GenerateRefreshToken(userID, 1)
	require.NoError(t, err)
	_, err = uc.AuthenticateRefresh(context.Background(), refresh)
	require.NoError(t, err)

	// Act
	require.NoError(t, uc.Logout(context.Background(), userID))
	_, err = uc.AuthenticateRefresh(context.Background(), refresh)

	// Assert
	assert.ErrorIs(t, err, apperror.ErrTokenRevoked)
}

func TestAuthUC_AuthenticateAPIKey(t *testing.T) {
	keyID := uuid.New()
	project := &models.Project{ID: uuid.New(), Name: "p"}

	t.Run("Active key resolves project and records use", func(t *testing.T) {
		uc, mockRepo, _ := setupAuthUC(t)
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		mockRepo.EXPECT().
			GetActiveAPIKeyWithProject(gomock.Any(), "secret").
			Return(&models.APIKey{ID: keyID, ProjectID: project.ID}, project, nil)
		mockRepo.EXPECT().TouchAPIKey(gomock.Any(), keyID, fixed).Return(nil)

		got, err := uc.AuthenticateAPIKey(context.Background(), "secret")

		require.NoError(t, err)
		assert.Equal(t, project, got)
	})

	t.Run("Touch failure does not fail the request", func(t *testing.T) {
		uc, mockRepo, _ := setupAuthUC(t)

		mockRepo.EXPECT().
			GetActiveAPIKeyWithProject(gomock.Any(), "secret").
			Return(&models.APIKey{ID: keyID, ProjectID: project.ID}, project, nil)
		mockRepo.EXPECT().TouchAPIKey(gomock.Any(), keyID, gomock.Any()).Return(errors.New("write failed"))

		got, err := uc.AuthenticateAPIKey(context.Background(), "secret")

		require.NoError(t, err)
		assert.Equal(t, project, got)
	})

	t.Run("Inactive or unknown key", func(t *testing.T) {
		uc, mockRepo, _ := setupAuthUC(t)

		mockRepo.EXPECT().
			GetActiveAPIKeyWithProject(gomock.Any(), "disabled").
			Return(nil, nil, apperror.ErrAPIKeyNotFound)

		_, err := uc.AuthenticateAPIKey(context.Background(), "disabled")

		assert.ErrorIs(t, err, apperror.ErrInvalidAPIKey)
	})

	t.Run("Missing key", func(t *testing.T) {
		uc, _, _ := setupAuthUC(t)

		_, err := uc.AuthenticateAPIKey(context.Background(), "")

		assert.ErrorIs(t, err, apperror.ErrAPIKeyRequired)
	})
}
