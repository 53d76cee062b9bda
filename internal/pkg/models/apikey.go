package models

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a long-lived machine credential scoped to one project
type APIKey struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ProjectID uuid.UUID  `json:"project" db:"project_id"`
	Key       string     `json:"key" db:"key"`
	Name      string     `json:"name" db:"name"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	LastUsed  *time.Time `json:"lastUsed,omitempty" db:"last_used_at"`
}

// CreateAPIKeyRequest represents a request to add a key to a project
type CreateAPIKeyRequest struct {
	Name string `json:"name"`
}

// UpdateAPIKeyRequest represents a partial key update; nil fields are kept
type UpdateAPIKeyRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

const (
	DefaultAPIKeyName = "Default API Key"
	InitialAPIKeyName = "Initial API Key"
	NewAPIKeyName     = "New API Key"
	MaxAPIKeyNameLen  = 50
)
