package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account and returns it with the password hash
	// stripped.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
}
