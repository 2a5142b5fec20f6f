package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/project-api/internal/api/handler"
	"github.com/taskhive/project-api/internal/api/middleware"
	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
	"github.com/taskhive/project-api/internal/core/service"
	"github.com/taskhive/project-api/internal/infrastructure/token"
)

// In-memory repositories backing the full-stack flow below.

type memUserRepo struct {
	mu    sync.Mutex
	users map[domain.UserID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[domain.UserID]*domain.User)}
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string, includePassword bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			if !includePassword {
				out.PasswordHash = ""
			}
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) List(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		clone.PasswordHash = ""
		out = append(out, clone)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id domain.UserID, fields ports.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.BadRequest("nothing to update")
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.BadRequest("nothing to delete")
	}
	delete(r.users, id)
	return nil
}

type memMembershipRepo struct {
	mu   sync.Mutex
	rows []domain.Membership
}

func (r *memMembershipRepo) Insert(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *m)
	out := *m
	return &out, nil
}

type memActivityRepo struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (r *memActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *memActivityRepo) ListBySubject(_ context.Context, subjectID string, limit int) ([]domain.ActivityEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ActivityEvent
	for _, ev := range r.events {
		if ev.SubjectID == subjectID {
			out = append(out, ev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type noopThrottle struct{}

func (noopThrottle) TooMany(context.Context, string) (bool, error) { return false, nil }
func (noopThrottle) RecordFailure(context.Context, string) error   { return nil }
func (noopThrottle) Reset(context.Context, string) error           { return nil }

// newAPIStack wires real services against in-memory persistence.
func newAPIStack(t *testing.T) *echo.Echo {
	t.Helper()

	tokens, err := token.NewManager("e2e-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	hasher := service.NewBcryptHasher()
	userRepo := newMemUserRepo()
	activityRepo := &memActivityRepo{}

	userSvc := service.NewUserService(userRepo, &memMembershipRepo{}, hasher, nil)
	authSvc := service.NewAuthService(userSvc, hasher, tokens, noopThrottle{}, nil, zerolog.Nop())

	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc, activityRepo)

	e := newTestEcho()
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	users := e.Group("/users", middleware.Auth(tokens))
	users.GET("/:id", userH.Get)

	return e
}

func TestAPI_RegisterLoginAndAccess(t *testing.T) {
	e := newAPIStack(t)

	// Register with mixed-case email; the account comes back without any
	// secret material and with the email lowercased.
	rec := postJSON(e, "/auth/register", `{"name":"Joe","email":"JOE@Example.com","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	userID, _ := created["id"].(string)
	if userID == "" {
		t.Fatalf("register response has no id: %v", created)
	}
	if created["email"] != "joe@example.com" {
		t.Fatalf("email not normalized: %v", created["email"])
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("register response leaks the bcrypt hash")
	}

	// A second registration under any casing of the same email is rejected.
	rec = postJSON(e, "/auth/register", `{"name":"Imposter","email":"joe@EXAMPLE.com","password":"another1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}

	// Wrong password is rejected without hinting whether the email exists.
	rec = postJSON(e, "/auth/login", `{"email":"joe@example.com","password":"wrongpass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password login: expected 401, got %d", rec.Code)
	}
	badPassBody := rec.Body.String()

	rec = postJSON(e, "/auth/login", `{"email":"nobody@example.com","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email login: expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != badPassBody {
		t.Fatalf("unknown-email and wrong-password responses differ: %q vs %q", rec.Body.String(), badPassBody)
	}

	// Correct credentials, any casing, yield a token.
	rec = postJSON(e, "/auth/login", `{"email":"Joe@Example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var loginBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &loginBody); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	accessToken := loginBody["access_token"]
	if accessToken == "" {
		t.Fatalf("login response has no access_token: %v", loginBody)
	}

	// The token opens the protected surface.
	req := httptest.NewRequest(http.MethodGet, "/users/"+userID, nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("authorized fetch: expected 200, got %d: %s", res.Code, res.Body.String())
	}
	var fetched map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode user response: %v", err)
	}
	if fetched["id"] != userID {
		t.Fatalf("fetched wrong user: %v", fetched)
	}

	// Without the header the same route is closed.
	req = httptest.NewRequest(http.MethodGet, "/users/"+userID, nil)
	res = httptest.NewRecorder()
	e.ServeHTTP(res, req)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous fetch: expected 401, got %d", res.Code)
	}
}
