package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

// ProjectUpdate carries the mutable project fields.
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// ProjectRepository defines the persistence interface for projects.
type ProjectRepository interface {
	Insert(ctx context.Context, project *domain.Project) (*domain.Project, error)
	// FindByID eager-loads the project's memberships and their users in a
	// single round trip.
	FindByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id domain.ProjectID, fields ProjectUpdate) error
	Delete(ctx context.Context, id domain.ProjectID) error
}
