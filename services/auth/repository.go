package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/smsmock/services/auth AuthRepo

// AuthRepo defines the credential store used by the auth usecase
type AuthRepo interface {
	// users
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// CreateAccount inserts the user with its default project and API key
	// in one transaction.
	CreateAccount(ctx context.Context, user *models.User, project *models.Project, key *models.APIKey) error

	// WithTokenVersionBump increments the user's token version and calls fn
	// with the new value before committing. An error from fn rolls the
	// increment back.
	WithTokenVersionBump(ctx context.Context, userID uuid.UUID, fn func(version int64) error) error

	// api keys
	GetActiveAPIKeyWithProject(ctx context.Context, key string) (*models.APIKey, *models.Project, error)
	TouchAPIKey(ctx context.Context, keyID uuid.UUID, usedAt time.Time) error
}
