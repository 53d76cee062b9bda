package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/smsmock/internal/pkg/models"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// PrincipalKey is the key for the authenticated user in context
	PrincipalKey ContextKey = "principal"
	// ProjectKey is the key for the API-key project in context
	ProjectKey ContextKey = "project"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithPrincipal attaches the authenticated user to the context
func WithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipal retrieves the authenticated user from context
func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*models.Principal)
	return principal, ok && principal != nil
}

// WithProject attaches the project resolved from an API key to the context
func WithProject(ctx context.Context, project *models.Project) context.Context {
	return context.WithValue(ctx, ProjectKey, project)
}

// GetProject retrieves the API-key project from context
func GetProject(ctx context.Context) (*models.Project, bool) {
	project, ok := ctx.Value(ProjectKey).(*models.Project)
	return project, ok && project != nil
}
