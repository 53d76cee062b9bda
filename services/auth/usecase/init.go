package usecase

import (
	"time"

	"github.com/piresc/smsmock/internal/pkg/jwt"
	"github.com/piresc/smsmock/internal/pkg/metrics"
	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/piresc/smsmock/services/auth"
)

// AuthUC implements the auth usecase
type AuthUC struct {
	authRepo auth.AuthRepo
	tokens   *jwt.Manager
	metrics  *metrics.Metrics
	cfg      *models.Config
	now      func() time.Time
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(
	authRepo auth.AuthRepo,
	tokens *jwt.Manager,
	m *metrics.Metrics,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		tokens:   tokens,
		metrics:  m,
		cfg:      cfg,
		now:      models.Now,
	}
}
