package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

var _ ports.UserRepository = (*MongoUserRepository)(nil)

type mongoUser struct {
	ID           string            `bson:"_id"`
	Name         string            `bson:"name"`
	Email        string            `bson:"email"`
	PasswordHash string            `bson:"password_hash,omitempty"`
	Role         string            `bson:"role"`
	CreatedAt    int64             `bson:"created_at"`
	UpdatedAt    int64             `bson:"updated_at"`
	Memberships  []mongoMembership `bson:"memberships,omitempty"`
	Projects     []mongoProject    `bson:"member_projects,omitempty"`
}

func (mu *mongoUser) toDomain() *domain.User {
	user := &domain.User{
		ID:           domain.UserID(mu.ID),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}

	projects := make(map[string]*domain.Project, len(mu.Projects))
	for i := range mu.Projects {
		projects[mu.Projects[i].ID] = mu.Projects[i].toDomain()
	}
	for _, mm := range mu.Memberships {
		membership := mm.toDomain()
		membership.Project = projects[mm.ProjectID]
		user.Memberships = append(user.Memberships, *membership)
	}

	return user
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		ID:           string(user.ID),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string, includePassword bool) (*domain.User, error) {
	opts := options.FindOne()
	if !includePassword {
		opts.SetProjection(bson.M{"password_hash": 0})
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

// FindByID loads the user together with memberships and their projects in a
// single aggregation round trip.
func (r *MongoUserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": string(id)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         membershipCollection,
			"localField":   "_id",
			"foreignField": "user_id",
			"as":           "memberships",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         projectCollection,
			"localField":   "memberships.project_id",
			"foreignField": "_id",
			"as":           "member_projects",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find user by id: decode: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return docs[0].toDomain(), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password_hash": 0}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list users: decode: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].toDomain())
	}
	return users, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, id domain.UserID, fields ports.UserUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.PasswordHash != nil {
		set["password_hash"] = *fields.PasswordHash
	}
	if fields.Role != nil {
		set["role"] = *fields.Role
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": string(id)}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.BadRequest("nothing to update")
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.BadRequest("nothing to delete")
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
