package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/apperror"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// TokenType distinguishes access tokens from refresh tokens
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

// Claims represents registered JWT claims plus session fields
type Claims struct {
	UserID       uuid.UUID `json:"user_id"`
	TokenVersion int64     `json:"token_version"`
	Type         TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// Manager signs and validates access and refresh tokens. Each kind has its
// own secret so one can never be accepted in place of the other.
type Manager struct {
	cfg models.JWTConfig
	now func() time.Time
}

// NewManager creates a token manager from configuration
func NewManager(cfg models.JWTConfig) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// GenerateAccessToken signs a short-lived access token for the user
func (m *Manager) GenerateAccessToken(userID uuid.UUID, version int64) (string, time.Time, error) {
	return m.sign(userID, version, TypeAccess, m.cfg.AccessSecret, m.cfg.AccessExpiration)
}

// GenerateRefreshToken signs a long-lived refresh token bound to a token version
func (m *Manager) GenerateRefreshToken(userID uuid.UUID, version int64) (string, time.Time, error) {
	return m.sign(userID, version, TypeRefresh, m.cfg.RefreshSecret, m.cfg.RefreshExpiration)
}

// GeneratePair signs both tokens for one token version
func (m *Manager) GeneratePair(userID uuid.UUID, version int64) (*models.TokenPair, error) {
	access, accessExp, err := m.GenerateAccessToken(userID, version)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := m.GenerateRefreshToken(userID, version)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ValidateAccessToken returns ErrInvalidToken or ErrTokenExpired on failure
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TypeAccess, m.cfg.AccessSecret, apperror.ErrInvalidToken, apperror.ErrTokenExpired)
}

// ValidateRefreshToken returns ErrInvalidRefreshToken or ErrRefreshExpired on failure
func (m *Manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, TypeRefresh, m.cfg.RefreshSecret, apperror.ErrInvalidRefreshToken, apperror.ErrRefreshExpired)
}

func (m *Manager) sign(userID uuid.UUID, version int64, typ TokenType, secret string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(ttl)

	claims := Claims{
		UserID:       userID,
		TokenVersion: version,
		Type:         typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (m *Manager) validate(tokenString string, typ TokenType, secret string, invalid, expired error) (*Claims, error) {
	if tokenString == "" {
		return nil, invalid
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		// A bad signature wins over expiry so forged tokens never look merely stale
		if errors.Is(err, jwt.ErrSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, invalid
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, expired
		}
		return nil, invalid
	}

	if !token.Valid || claims.Type != typ || claims.UserID == uuid.Nil {
		return nil, invalid
	}

	return claims, nil
}
