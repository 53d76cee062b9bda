package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestProjectUC_CreateAPIKey(t *testing.T) {
	ownerID := uuid.New()
	project := &models.Project{ID: uuid.New(), OwnerID: ownerID}

	t.Run("Default name", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)

		mockRepo.EXPECT().GetProjectByOwner(gomock.Any(), ownerID, project.ID).Return(project, nil)
		mockRepo.EXPECT().CreateAPIKey(gomock.Any(), gomock.Any()).Return(nil)

		key, err := uc.CreateAPIKey(context.Background(), ownerID, project.ID, &models.CreateAPIKeyRequest{})

		require.NoError(t, err)
		assert.Equal(t, models.NewAPIKeyName, key.Name)
		assert.Equal(t, project.ID, key.ProjectID)
		assert.Len(t, key.Key, 64)
	})

	t.Run("Name too long", func(t *testing.T) {
		uc, _ := setupProjectUC(t)

		_, err := uc.CreateAPIKey(context.Background(), ownerID, project.ID, &models.CreateAPIKeyRequest{Name: strings.Repeat("x", 51)})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Foreign project", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)

		mockRepo.EXPECT().GetProjectByOwner(gomock.Any(), ownerID, project.ID).Return(nil, apperror.ErrProjectNotFound)

		_, err := uc.CreateAPIKey(context.Background(), ownerID, project.ID, &models.CreateAPIKeyRequest{Name: "ci"})

		assert.ErrorIs(t, err, apperror.ErrProjectNotFound)
	})
}

func TestProjectUC_ListAPIKeys(t *testing.T) {
	uc, mockRepo := setupProjectUC(t)
	ownerID := uuid.New()
	project := &models.Project{ID: uuid.New(), OwnerID: ownerID}
	keys := []*models.APIKey{{ID: uuid.New(), ProjectID: project.ID}}

	mockRepo.EXPECT().GetProjectByOwner(gomock.Any(), ownerID, project.ID).Return(project, nil)
	mockRepo.EXPECT().ListAPIKeysByProject(gomock.Any(), project.ID).Return(keys, nil)

	got, err := uc.ListAPIKeys(context.Background(), ownerID, project.ID)

	require.NoError(t, err)
	assert.Equal(t, keys, got)
}

func TestProjectUC_UpdateAPIKey(t *testing.T) {
	ownerID := uuid.New()

	t.Run("Deactivate keeps name", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)
		key := &models.APIKey{ID: uuid.New(), Name: "ci", IsActive: true}

		mockRepo.EXPECT().GetAPIKeyWithOwner(gomock.Any(), key.ID).Return(key, ownerID, nil)
		mockRepo.EXPECT().UpdateAPIKey(gomock.Any(), key).Return(nil)

		got, err := uc.UpdateAPIKey(context.Background(), ownerID, key.ID, &models.UpdateAPIKeyRequest{IsActive: boolPtr(false)})

		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.Equal(t, "ci", got.Name)
	})

	t.Run("Other owner forbidden", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)
		key := &models.APIKey{ID: uuid.New(), Name: "ci", IsActive: true}

		mockRepo.EXPECT().GetAPIKeyWithOwner(gomock.Any(), key.ID).Return(key, uuid.New(), nil)

		_, err := uc.UpdateAPIKey(context.Background(), ownerID, key.ID, &models.UpdateAPIKeyRequest{Name: strPtr("x")})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("Missing key", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)
		keyID := uuid.New()

		mockRepo.EXPECT().GetAPIKeyWithOwner(gomock.Any(), keyID).Return(nil, uuid.Nil, apperror.ErrAPIKeyNotFound)

		_, err := uc.UpdateAPIKey(context.Background(), ownerID, keyID, &models.UpdateAPIKeyRequest{})

		assert.ErrorIs(t, err, apperror.ErrAPIKeyNotFound)
	})
}

func TestProjectUC_DeleteAPIKey(t *testing.T) {
	ownerID := uuid.New()
	key := &models.APIKey{ID: uuid.New()}

	t.Run("Owner", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)

		mockRepo.EXPECT().GetAPIKeyWithOwner(gomock.Any(), key.ID).Return(key, ownerID, nil)
		mockRepo.EXPECT().DeleteAPIKey(gomock.Any(), key.ID).Return(nil)

		assert.NoError(t, uc.DeleteAPIKey(context.Background(), ownerID, key.ID))
	})

	t.Run("Other owner", func(t *testing.T) {
		uc, mockRepo := setupProjectUC(t)

		mockRepo.EXPECT().GetAPIKeyWithOwner(gomock.Any(), key.ID).Return(key, uuid.New(), nil)

		assert.ErrorIs(t, uc.DeleteAPIKey(context.Background(), ownerID, key.ID), apperror.ErrForbidden)
	})
}
