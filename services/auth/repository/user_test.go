package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAuthRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

var userRowColumns = []string{"id", "username", "email", "password_hash", "token_version", "created_at", "updated_at"}

func TestGetUserByID(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userRowColumns).
					AddRow(userID.String(), "alice", "alice@example.com", "hash", int64(3), now, now)
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs(userID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, int64(3), user.TokenVersion)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, apperror.ErrUserNotFound)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
					WithArgs(userID).
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get user")
				assert.False(t, apperror.IsKind(err, apperror.KindNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAuthRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			user, err := repo.GetUserByID(context.Background(), userID)
			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(uuid.New().String(), "bob", "bob@example.com", "hash", int64(1), now, now)
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice", "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newAccount() (*models.User, *models.Project, *models.APIKey) {
	now := time.Now()
	user := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash", TokenVersion: 1, CreatedAt: now, UpdatedAt: now}
	project := &models.Project{ID: uuid.New(), OwnerID: user.ID, Name: models.DefaultProjectName, Description: models.DefaultProjectDescription, CreatedAt: now, UpdatedAt: now}
	key := &models.APIKey{ID: uuid.New(), ProjectID: project.ID, Key: "k", Name: models.DefaultAPIKeyName, IsActive: true, CreatedAt: now}
	return user, project, key
}

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		user, project, key := newAccount()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO projects").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO api_keys").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateAccount(context.Background(), user, project, key)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate user", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		user, project, key := newAccount()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateAccount(context.Background(), user, project, key)

		assert.ErrorIs(t, err, apperror.ErrDuplicateAccount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Key insert fails rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		user, project, key := newAccount()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO projects").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO api_keys").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.CreateAccount(context.Background(), user, project, key)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert default api key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWithTokenVersionBump(t *testing.T) {
	userID := uuid.New()

	t.Run("Commits after callback", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE users SET token_version = token_version \\+ 1").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"token_version"}).AddRow(int64(5)))
		mock.ExpectCommit()

		var seen int64
		err := repo.WithTokenVersionBump(context.Background(), userID, func(version int64) error {
			seen = version
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), seen)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Callback error rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE users SET token_version").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"token_version"}).AddRow(int64(2)))
		mock.ExpectRollback()

		signErr := errors.New("sign failed")
		err := repo.WithTokenVersionBump(context.Background(), userID, func(int64) error {
			return signErr
		})

		assert.ErrorIs(t, err, signErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE users SET token_version").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"token_version"}))
		mock.ExpectRollback()

		called := false
		err := repo.WithTokenVersionBump(context.Background(), userID, func(int64) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
