package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

// MembershipRepository persists user-to-project relations. Mutation and
// deletion of existing rows is owned by the management layer, not here.
type MembershipRepository interface {
	Insert(ctx context.Context, membership *domain.Membership) (*domain.Membership, error)
}
