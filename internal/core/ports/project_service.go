package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

type CreateProjectInput struct {
	Name        string
	Description string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

type ProjectService interface {
	// Create inserts the project and synchronously records the creator as
	// its OWNER. Returns the ownership membership.
	Create(ctx context.Context, userID domain.UserID, in CreateProjectInput) (*domain.Membership, error)
	FindByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id domain.ProjectID, in UpdateProjectInput) error
	Delete(ctx context.Context, id domain.ProjectID) error
}
