package http

import (
	"net/http"
	"time"

	"github.com/piresc/smsmock/internal/pkg/constants"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// refreshCookie builds the http-only cookie carrying the refresh token. It is
// scoped to the refresh endpoint so no other request ever sends it.
func refreshCookie(cfg *models.Config, token string, expiresAt time.Time) *http.Cookie {
	cookie := baseRefreshCookie(cfg)
	cookie.Value = token
	cookie.Expires = expiresAt
	cookie.MaxAge = int(cfg.JWT.RefreshExpiration / time.Second)
	return cookie
}

// expiredRefreshCookie overwrites the refresh cookie in the browser
func expiredRefreshCookie(cfg *models.Config) *http.Cookie {
	cookie := baseRefreshCookie(cfg)
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

func baseRefreshCookie(cfg *models.Config) *http.Cookie {
	production := cfg.App.IsProduction()

	sameSite := http.SameSiteLaxMode
	if production {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     constants.RefreshTokenCookie,
		Path:     constants.RefreshTokenCookiePath,
		HttpOnly: true,
		Secure:   production,
		SameSite: sameSite,
	}
}
