package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const taskCollection = "tasks"

type MongoTaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection(taskCollection)}
}

var _ ports.TaskRepository = (*MongoTaskRepository)(nil)

type mongoTask struct {
	ID              string `bson:"_id"`
	Name            string `bson:"name"`
	Description     string `bson:"description"`
	Status          string `bson:"status"`
	ResponsibleName string `bson:"responsible_name"`
	ProjectID       string `bson:"project_id"`
	CreatedAt       int64  `bson:"created_at"`
	UpdatedAt       int64  `bson:"updated_at"`
}

func (mt *mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:              mt.ID,
		Name:            mt.Name,
		Description:     mt.Description,
		Status:          domain.TaskStatus(mt.Status),
		ResponsibleName: mt.ResponsibleName,
		ProjectID:       domain.ProjectID(mt.ProjectID),
		CreatedAt:       unixToTime(mt.CreatedAt),
		UpdatedAt:       unixToTime(mt.UpdatedAt),
	}
}

func (r *MongoTaskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	doc := mongoTask{
		ID:              task.ID,
		Name:            task.Name,
		Description:     task.Description,
		Status:          string(task.Status),
		ResponsibleName: task.ResponsibleName,
		ProjectID:       string(task.ProjectID),
		CreatedAt:       task.CreatedAt.Unix(),
		UpdatedAt:       task.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (r *MongoTaskRepository) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"project_id": string(projectID)})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTask
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list tasks: decode: %w", err)
	}

	tasks := make([]domain.Task, 0, len(docs))
	for i := range docs {
		tasks = append(tasks, *docs[i].toDomain())
	}
	return tasks, nil
}
