package models

import "time"

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a request to sign in with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is a freshly minted access/refresh token generation
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthResult is returned by register and login
type AuthResult struct {
	User          *Principal
	Tokens        *TokenPair
	DefaultAPIKey string
}

// AuthResponse is the JSON body for register and login. The refresh token is
// never part of the body; it travels in an http-only cookie.
type AuthResponse struct {
	User          *Principal `json:"user"`
	Token         string     `json:"token"`
	DefaultAPIKey string     `json:"defaultApiKey,omitempty"`
}

// RefreshResponse is the JSON body for a successful refresh
type RefreshResponse struct {
	Token string `json:"token"`
}

// MeResponse is the JSON body for the current user endpoint
type MeResponse struct {
	User *Principal `json:"user"`
}
