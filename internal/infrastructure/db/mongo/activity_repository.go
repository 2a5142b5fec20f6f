package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const activityCollection = "activity"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

var _ ports.ActivityRepository = (*MongoActivityRepository)(nil)

type mongoActivity struct {
	Kind      string `bson:"kind"`
	SubjectID string `bson:"subject_id"`
	ProjectID string `bson:"project_id,omitempty"`
	Detail    string `bson:"detail,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := mongoActivity{
		Kind:      string(event.Kind),
		SubjectID: event.SubjectID,
		ProjectID: string(event.ProjectID),
		Detail:    event.Detail,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *MongoActivityRepository) ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"subject_id": subjectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoActivity
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list activity: decode: %w", err)
	}

	events := make([]domain.ActivityEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.ActivityEvent{
			Kind:      domain.ActivityKind(d.Kind),
			SubjectID: d.SubjectID,
			ProjectID: domain.ProjectID(d.ProjectID),
			Detail:    d.Detail,
			Timestamp: unixToTime(d.Timestamp),
		})
	}
	return events, nil
}
