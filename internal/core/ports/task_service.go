package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

type CreateTaskInput struct {
	Name            string
	Description     string
	Status          domain.TaskStatus
	ResponsibleName string
}

type TaskService interface {
	Create(ctx context.Context, projectID domain.ProjectID, in CreateTaskInput) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Task, error)
}
