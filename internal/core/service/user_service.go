package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

// UserService owns user lifecycle. Email normalization and password hashing
// happen here, before every repository write; there is no hash-on-insert
// hook hiding in the persistence layer.
type UserService struct {
	repo        ports.UserRepository
	memberships ports.MembershipRepository
	hasher      ports.SecretHasher
	activity    ports.ActivityRecorder
}

func NewUserService(
	repo ports.UserRepository,
	memberships ports.MembershipRepository,
	hasher ports.SecretHasher,
	activity ports.ActivityRecorder,
) *UserService {
	return &UserService{repo: repo, memberships: memberships, hasher: hasher, activity: activity}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleBasic
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Name:         in.Name,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Insert(ctx, user)
}

func (s *UserService) FindByEmail(ctx context.Context, email string, includePassword bool) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, domain.NormalizeEmail(email), includePassword)
}

func (s *UserService) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Redacted(), nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id domain.UserID, in ports.UpdateUserInput) error {
	fields := ports.UserUpdate{
		Name: in.Name,
		Role: in.Role,
	}
	if in.Email != nil {
		normalized := domain.NormalizeEmail(*in.Email)
		fields.Email = &normalized
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return err
		}
		fields.PasswordHash = &hash
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id domain.UserID) error {
	return s.repo.Delete(ctx, id)
}

// AddToProject invites an existing user into a project at the given access
// level. No single-owner check at invite time: a second OWNER row is
// accepted, matching the creation-path-only exclusivity.
func (s *UserService) AddToProject(ctx context.Context, in ports.AddToProjectInput) (*domain.Membership, error) {
	if !in.AccessLevel.Valid() {
		return nil, domain.BadRequest("unknown access level")
	}

	if _, err := s.repo.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	membership, err := s.memberships.Insert(ctx, &domain.Membership{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		ProjectID:   in.ProjectID,
		AccessLevel: in.AccessLevel,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(domain.ActivityEvent{
			Kind:      domain.ActivityMemberInvited,
			SubjectID: string(in.UserID),
			ProjectID: in.ProjectID,
			Detail:    in.AccessLevel.String(),
			Timestamp: now,
		})
	}

	return membership, nil
}
