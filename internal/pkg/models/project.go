package models

import (
	"time"

	"github.com/google/uuid"
)

// Project groups API keys and logged messages under one owner
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"owner" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents a partial project update; nil fields are kept
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProjectWithKey is returned when a project is created together with its first key
type ProjectWithKey struct {
	Project *Project `json:"project"`
	APIKey  string   `json:"apiKey"`
}

const (
	DefaultProjectName        = "Default Project"
	DefaultProjectDescription = "Automatically created default project"
)
