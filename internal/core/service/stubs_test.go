package service

import (
	"context"
	"fmt"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type memUserRepo struct {
	users   map[domain.UserID]*domain.User
	updates map[domain.UserID]ports.UserUpdate
	deleted []domain.UserID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:   make(map[domain.UserID]*domain.User),
		updates: make(map[domain.UserID]ports.UserUpdate),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string, includePassword bool) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := cloneUser(u)
			if !includePassword {
				found.PasswordHash = ""
			}
			return found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		redacted := cloneUser(u)
		redacted.PasswordHash = ""
		users = append(users, *redacted)
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, id domain.UserID, fields ports.UserUpdate) error {
	if _, ok := r.users[id]; !ok {
		return domain.BadRequest("nothing to update")
	}
	r.updates[id] = fields
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id domain.UserID) error {
	if _, ok := r.users[id]; !ok {
		return domain.BadRequest("nothing to delete")
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type memMembershipRepo struct {
	inserted []*domain.Membership
}

func (r *memMembershipRepo) Insert(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
	clone := *m
	r.inserted = append(r.inserted, &clone)
	return m, nil
}

type memProjectRepo struct {
	projects map[domain.ProjectID]*domain.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[domain.ProjectID]*domain.Project)}
}

func (r *memProjectRepo) Insert(_ context.Context, p *domain.Project) (*domain.Project, error) {
	clone := *p
	r.projects[p.ID] = &clone
	return p, nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *memProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, *p)
	}
	return projects, nil
}

func (r *memProjectRepo) Update(_ context.Context, id domain.ProjectID, _ ports.ProjectUpdate) error {
	if _, ok := r.projects[id]; !ok {
		return domain.BadRequest("nothing to update")
	}
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id domain.ProjectID) error {
	if _, ok := r.projects[id]; !ok {
		return domain.BadRequest("nothing to delete")
	}
	delete(r.projects, id)
	return nil
}

type memTaskRepo struct {
	tasks []*domain.Task
}

func (r *memTaskRepo) Insert(_ context.Context, t *domain.Task) (*domain.Task, error) {
	clone := *t
	r.tasks = append(r.tasks, &clone)
	return t, nil
}

func (r *memTaskRepo) ListByProject(_ context.Context, projectID domain.ProjectID) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

type memActivityRepo struct {
	events  []domain.ActivityEvent
	failing bool
}

func (r *memActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.failing {
		return fmt.Errorf("insert activity: store down")
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *memActivityRepo) ListBySubject(_ context.Context, subjectID string, _ int) ([]domain.ActivityEvent, error) {
	events := make([]domain.ActivityEvent, 0)
	for _, e := range r.events {
		if e.SubjectID == subjectID {
			events = append(events, e)
		}
	}
	return events, nil
}

type stubTokens struct {
	fail bool
}

func (s *stubTokens) Issue(claims ports.TokenClaims) (string, error) {
	if s.fail {
		return "", fmt.Errorf("token: sign: no key")
	}
	return "token-" + string(claims.UserID), nil
}

func (s *stubTokens) Verify(_ string) (*ports.TokenClaims, error) {
	return nil, domain.ErrInvalidToken
}

type fakeThrottle struct {
	failures map[string]int
	limit    int
	resets   []string
	err      error
}

func newFakeThrottle(limit int) *fakeThrottle {
	return &fakeThrottle{failures: make(map[string]int), limit: limit}
}

func (t *fakeThrottle) TooMany(_ context.Context, email string) (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.failures[email] >= t.limit, nil
}

func (t *fakeThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *fakeThrottle) Reset(_ context.Context, email string) error {
	t.resets = append(t.resets, email)
	delete(t.failures, email)
	return nil
}

type recorderStub struct {
	events []domain.ActivityEvent
}

func (r *recorderStub) Record(event domain.ActivityEvent) {
	r.events = append(r.events, event)
}
