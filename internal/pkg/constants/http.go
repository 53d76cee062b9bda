package constants

// Cookie and header names
const (
	RefreshTokenCookie     = "refreshToken"
	RefreshTokenCookiePath = "/api/auth/refresh-token"
	HeaderAPIKey           = "X-API-Key"
)
