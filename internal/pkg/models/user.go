package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns projects and signs in to the dashboard.
// TokenVersion is bumped on every login, refresh and logout; a refresh token
// is only accepted while the version it carries equals the stored one.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	TokenVersion int64     `json:"-" db:"token_version"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Principal is the sanitized identity attached to an authenticated request
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Principal strips credentials and counters from the user record
func (u *User) Principal() *Principal {
	return &Principal{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
