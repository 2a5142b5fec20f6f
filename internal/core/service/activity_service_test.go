package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskhive/project-api/internal/core/domain"
)

func TestActivityService_Process(t *testing.T) {
	repo := &memActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{
		Kind:      domain.ActivityLoginFailed,
		SubjectID: "joe@example.com",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(repo.events))
	}
	if repo.events[0].Timestamp.IsZero() {
		t.Fatalf("missing timestamp must be filled in")
	}
}

func TestActivityService_Process_StoreFailure(t *testing.T) {
	svc := NewActivityService(&memActivityRepo{failing: true}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{
		Kind:      domain.ActivityUserRegistered,
		SubjectID: "u1",
	})
	if err == nil {
		t.Fatalf("expected error from failing store")
	}
}
