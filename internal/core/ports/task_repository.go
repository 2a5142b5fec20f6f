package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Task, error)
}
