package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

type TaskService struct {
	repo     ports.TaskRepository
	projects ports.ProjectRepository
}

func NewTaskService(repo ports.TaskRepository, projects ports.ProjectRepository) *TaskService {
	return &TaskService{repo: repo, projects: projects}
}

// Create adds a task to an existing project. The project lookup runs first;
// a task never references a project id that was not resolved.
func (s *TaskService) Create(ctx context.Context, projectID domain.ProjectID, in ports.CreateTaskInput) (*domain.Task, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.TaskCreated
	}
	if !status.Valid() {
		return nil, domain.BadRequest("unknown task status")
	}

	now := time.Now().UTC()
	return s.repo.Insert(ctx, &domain.Task{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Status:          status,
		ResponsibleName: in.ResponsibleName,
		ProjectID:       project.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (s *TaskService) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Task, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectID)
}
