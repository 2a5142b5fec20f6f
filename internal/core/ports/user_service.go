package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

type AddToProjectInput struct {
	UserID      domain.UserID
	ProjectID   domain.ProjectID
	AccessLevel domain.AccessLevel
}

// UserService owns user lifecycle. It is the single code path that prepares
// a user for persistence: email normalization and password hashing happen
// here, before any repository write.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	FindByEmail(ctx context.Context, email string, includePassword bool) (*domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id domain.UserID, in UpdateUserInput) error
	Delete(ctx context.Context, id domain.UserID) error
	AddToProject(ctx context.Context, in AddToProjectInput) (*domain.Membership, error)
}
