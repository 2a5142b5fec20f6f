package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

// UserUpdate carries the mutable user fields. PasswordHash is already
// hashed by the service layer; repositories never see plaintext secrets.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user for a normalized email. The password hash
	// is populated only when includePassword is set.
	FindByEmail(ctx context.Context, email string, includePassword bool) (*domain.User, error)
	// FindByID eager-loads the user's memberships and their projects in a
	// single round trip.
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id domain.UserID, fields UserUpdate) error
	Delete(ctx context.Context, id domain.UserID) error
}
