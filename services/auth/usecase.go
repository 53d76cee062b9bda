package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/smsmock/services/auth AuthUC

// AuthUC represents the session and credential lifecycle usecase
type AuthUC interface {
	// session lifecycle
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error)
	Refresh(ctx context.Context, user *models.User) (*models.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*models.Principal, error)

	// authenticators used by the middleware
	AuthenticateAccess(ctx context.Context, token string) (*models.Principal, error)
	AuthenticateRefresh(ctx context.Context, token string) (*models.User, error)
	AuthenticateAPIKey(ctx context.Context, key string) (*models.Project, error)
}
