package usecase

import (
	"context"

	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

// AuthenticateAccess resolves the principal of a bearer access token
func (u *AuthUC) AuthenticateAccess(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, apperror.ErrUnauthenticated
	}

	claims, err := u.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	return user.Principal(), nil
}

// AuthenticateRefresh resolves the user of a refresh token and rejects it
// unless it carries the current token version
func (u *AuthUC) AuthenticateRefresh(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperror.ErrRefreshRequired
	}

	claims, err := u.tokens.ValidateRefreshToken(token)
	if err != nil {
		return nil, err
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	if claims.TokenVersion != user.TokenVersion {
		logger.WarnCtx(ctx, "Refresh token version mismatch",
			logger.String("user_id", user.ID.String()),
			logger.Int64("token_version", claims.TokenVersion),
			logger.Int64("current_version", user.TokenVersion))
		return nil, apperror.ErrTokenRevoked
	}

	return user, nil
}

// AuthenticateAPIKey resolves the project owning an active API key and
// records its use
func (u *AuthUC) AuthenticateAPIKey(ctx context.Context, key string) (project *models.Project, err error) {
	defer func() { u.metrics.RecordAPIKeyAuth(err) }()

	if key == "" {
		return nil, apperror.ErrAPIKeyRequired
	}

	apiKey, project, err := u.authRepo.GetActiveAPIKeyWithProject(ctx, key)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			logger.Debug("Rejected unknown or inactive API key",
				logger.String("key", utils.MaskSecret(key)))
			return nil, apperror.ErrInvalidAPIKey
		}
		return nil, err
	}

	if err := u.authRepo.TouchAPIKey(ctx, apiKey.ID, u.now()); err != nil {
		logger.WarnCtx(ctx, "Failed to record API key use",
			logger.String("api_key_id", apiKey.ID.String()),
			logger.Err(err))
	}

	return project, nil
}
