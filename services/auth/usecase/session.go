package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/internal/utils"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// missingAccountHash is compared against when the email is unknown so a
// failed login costs one bcrypt comparison either way.
func missingAccountHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.HashPassword("smsmock-missing-account")
	})
	return dummyHash
}

// column widths of users.username and users.email; bcrypt rejects longer passwords
const (
	maxUsernameLength = 100
	maxEmailLength    = 255
	maxPasswordBytes  = 72
)

// Register creates the account, its default project and API key, and the
// first token generation
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (result *models.AuthResult, err error) {
	defer func() { u.metrics.RecordAuth("register", err) }()

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, apperror.Validation("Username, email and password are required")
	}
	if utils.CharLen(username) > maxUsernameLength {
		return nil, apperror.Validation(fmt.Sprintf("Username must be at most %d characters", maxUsernameLength))
	}
	if utils.CharLen(email) > maxEmailLength {
		return nil, apperror.Validation(fmt.Sprintf("Email must be at most %d characters", maxEmailLength))
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, apperror.Validation(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}
	if !utils.IsValidEmail(email) {
		return nil, apperror.Validation("Invalid email format")
	}

	exists, err := u.authRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, apperror.ErrDuplicateAccount
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := u.now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		TokenVersion: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// sign before writing anything
	tokens, err := u.tokens.GeneratePair(user.ID, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	secret, err := utils.GenerateAPIKey()
	if err != nil {
		return nil, err
	}
	project := &models.Project{
		ID:          uuid.New(),
		OwnerID:     user.ID,
		Name:        models.DefaultProjectName,
		Description: models.DefaultProjectDescription,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	key := &models.APIKey{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Key:       secret,
		Name:      models.DefaultAPIKeyName,
		IsActive:  true,
		CreatedAt: now,
	}

	if err := u.authRepo.CreateAccount(ctx, user, project, key); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Account registered",
		logger.String("user_id", user.ID.String()),
		logger.String("project_id", project.ID.String()))

	return &models.AuthResult{
		User:          user.Principal(),
		Tokens:        tokens,
		DefaultAPIKey: secret,
	}, nil
}

// Login checks the credentials and rotates the token generation. Unknown
// emails and wrong passwords produce the same error.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (result *models.AuthResult, err error) {
	defer func() { u.metrics.RecordAuth("login", err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	user, err := u.authRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			utils.CheckPassword(missingAccountHash(), req.Password)
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	tokens, err := u.rotate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{
		User:   user.Principal(),
		Tokens: tokens,
	}, nil
}

// Refresh issues a new token pair for a user already resolved from a valid
// refresh token. The previous refresh token stops working.
func (u *AuthUC) Refresh(ctx context.Context, user *models.User) (tokens *models.TokenPair, err error) {
	defer func() { u.metrics.RecordAuth("refresh", err) }()
	return u.rotate(ctx, user.ID)
}

// Logout revokes every outstanding refresh token of the user
func (u *AuthUC) Logout(ctx context.Context, userID uuid.UUID) (err error) {
	defer func() { u.metrics.RecordAuth("logout", err) }()

	return u.authRepo.WithTokenVersionBump(ctx, userID, func(int64) error {
		return nil
	})
}

// Me returns the sanitized current user
func (u *AuthUC) Me(ctx context.Context, userID uuid.UUID) (*models.Principal, error) {
	user, err := u.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Principal(), nil
}

// rotate bumps the token version and signs a pair carrying the new value in
// the same transaction
func (u *AuthUC) rotate(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	var tokens *models.TokenPair
	err := u.authRepo.WithTokenVersionBump(ctx, userID, func(version int64) error {
		pair, err := u.tokens.GeneratePair(userID, version)
		if err != nil {
			return err
		}
		tokens = pair
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
