package ports

import (
	"context"

	"github.com/taskhive/project-api/internal/core/domain"
)

// ActivityRecorder accepts activity events for asynchronous persistence.
// Recording is best-effort: implementations never block business flows on
// feed failures.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityService persists a single activity event.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository defines the persistence interface for the activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.ActivityEvent, error)
}
