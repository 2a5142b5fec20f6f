package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

type ProjectService struct {
	repo        ports.ProjectRepository
	memberships ports.MembershipRepository
	users       ports.UserRepository
	activity    ports.ActivityRecorder
}

func NewProjectService(
	repo ports.ProjectRepository,
	memberships ports.MembershipRepository,
	users ports.UserRepository,
	activity ports.ActivityRecorder,
) *ProjectService {
	return &ProjectService{repo: repo, memberships: memberships, users: users, activity: activity}
}

// Create inserts the project and synchronously records the creator as its
// OWNER. Ownership is not optional or delayed; this is the only code path
// that writes an OWNER row for a brand-new project, so no duplicate check
// is needed here.
func (s *ProjectService) Create(ctx context.Context, userID domain.UserID, in ports.CreateProjectInput) (*domain.Membership, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project, err := s.repo.Insert(ctx, &domain.Project{
		ID:          domain.ProjectID(uuid.NewString()),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	membership, err := s.memberships.Insert(ctx, &domain.Membership{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectID:   project.ID,
		AccessLevel: domain.AccessOwner,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	membership.Project = project

	if s.activity != nil {
		s.activity.Record(domain.ActivityEvent{
			Kind:      domain.ActivityProjectCreated,
			SubjectID: string(userID),
			ProjectID: project.ID,
			Timestamp: now,
		})
	}

	return membership, nil
}

func (s *ProjectService) FindByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id domain.ProjectID, in ports.UpdateProjectInput) error {
	return s.repo.Update(ctx, id, ports.ProjectUpdate{
		Name:        in.Name,
		Description: in.Description,
	})
}

func (s *ProjectService) Delete(ctx context.Context, id domain.ProjectID) error {
	return s.repo.Delete(ctx, id)
}
