package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const projectCollection = "projects"

type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: db.Collection(projectCollection)}
}

var _ ports.ProjectRepository = (*MongoProjectRepository)(nil)

type mongoProject struct {
	ID          string            `bson:"_id"`
	Name        string            `bson:"name"`
	Description string            `bson:"description"`
	CreatedAt   int64             `bson:"created_at"`
	UpdatedAt   int64             `bson:"updated_at"`
	Members     []mongoMembership `bson:"members,omitempty"`
	Users       []mongoUser       `bson:"member_users,omitempty"`
}

func (mp *mongoProject) toDomain() *domain.Project {
	project := &domain.Project{
		ID:          domain.ProjectID(mp.ID),
		Name:        mp.Name,
		Description: mp.Description,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}

	users := make(map[string]*domain.User, len(mp.Users))
	for i := range mp.Users {
		// Redact defensively: the lookup projection already drops the hash,
		// but a joined user must never carry secret material upward.
		users[mp.Users[i].ID] = mp.Users[i].toDomain().Redacted()
	}
	for _, mm := range mp.Members {
		membership := mm.toDomain()
		membership.User = users[mm.UserID]
		project.Members = append(project.Members, *membership)
	}

	return project
}

func (r *MongoProjectRepository) Insert(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		ID:          string(project.ID),
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt.Unix(),
		UpdatedAt:   project.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return project, nil
}

// FindByID loads the project together with memberships and their users in a
// single aggregation round trip.
func (r *MongoProjectRepository) FindByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": string(id)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         membershipCollection,
			"localField":   "_id",
			"foreignField": "project_id",
			"as":           "members",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         userCollection,
			"localField":   "members.user_id",
			"foreignField": "_id",
			"as":           "member_users",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"password_hash": 0}}},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoProject
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find project: decode: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return docs[0].toDomain(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoProject
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list projects: decode: %w", err)
	}

	projects := make([]domain.Project, 0, len(docs))
	for i := range docs {
		projects = append(projects, *docs[i].toDomain())
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, id domain.ProjectID, fields ports.ProjectUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": string(id)}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.BadRequest("nothing to update")
	}
	return nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.BadRequest("nothing to delete")
	}
	return nil
}
