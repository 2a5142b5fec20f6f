package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const membershipCollection = "memberships"

type MongoMembershipRepository struct {
	coll *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MongoMembershipRepository {
	return &MongoMembershipRepository{coll: db.Collection(membershipCollection)}
}

var _ ports.MembershipRepository = (*MongoMembershipRepository)(nil)

type mongoMembership struct {
	ID          string `bson:"_id"`
	UserID      string `bson:"user_id"`
	ProjectID   string `bson:"project_id"`
	AccessLevel int    `bson:"access_level"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func (mm *mongoMembership) toDomain() *domain.Membership {
	return &domain.Membership{
		ID:          mm.ID,
		UserID:      domain.UserID(mm.UserID),
		ProjectID:   domain.ProjectID(mm.ProjectID),
		AccessLevel: domain.AccessLevel(mm.AccessLevel),
		CreatedAt:   unixToTime(mm.CreatedAt),
		UpdatedAt:   unixToTime(mm.UpdatedAt),
	}
}

func (r *MongoMembershipRepository) Insert(ctx context.Context, membership *domain.Membership) (*domain.Membership, error) {
	doc := mongoMembership{
		ID:          membership.ID,
		UserID:      string(membership.UserID),
		ProjectID:   string(membership.ProjectID),
		AccessLevel: int(membership.AccessLevel),
		CreatedAt:   membership.CreatedAt.Unix(),
		UpdatedAt:   membership.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert membership: %w", err)
	}
	return membership, nil
}
