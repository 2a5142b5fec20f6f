package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

// LoginThrottle tracks failed login attempts per email (Redis-backed in
// production). TooMany reports whether the account is currently locked out.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login on top of the user
// collaborator, the secret hasher and the token manager.
type AuthService struct {
	users    ports.UserService
	hasher   ports.SecretHasher
	tokens   ports.TokenManager
	throttle LoginThrottle
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserService,
	hasher ports.SecretHasher,
	tokens ports.TokenManager,
	throttle LoginThrottle,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		activity: activity,
		log:      log,
	}
}

// Register creates a new account. The duplicate check runs against the
// normalized email before any write; the unique index on users.email is the
// authoritative guard against a concurrent duplicate racing the check.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email, false)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	created, err := s.users.Create(ctx, ports.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.RoleBasic,
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.Internal("user creation returned no entity")
	}

	s.record(domain.ActivityEvent{
		Kind:      domain.ActivityUserRegistered,
		SubjectID: string(created.ID),
		Timestamp: time.Now().UTC(),
	})

	return created.Redacted(), nil
}

// Login verifies credentials and returns a signed access token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)

	if locked, err := s.throttle.TooMany(ctx, email); err != nil {
		// Fail open: a broken throttle must not lock everyone out.
		s.log.Warn().Err(err).Msg("login throttle check failed")
	} else if locked {
		s.record(domain.ActivityEvent{
			Kind:      domain.ActivityLoginThrottled,
			SubjectID: email,
			Timestamp: time.Now().UTC(),
		})
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", s.failLogin(ctx, email)
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", s.failLogin(ctx, email)
	}

	token, err := s.tokens.Issue(ports.TokenClaims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", err
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}
	s.record(domain.ActivityEvent{
		Kind:      domain.ActivityLoginSucceeded,
		SubjectID: string(user.ID),
		Timestamp: time.Now().UTC(),
	})

	return token, nil
}

func (s *AuthService) failLogin(ctx context.Context, email string) error {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
	s.record(domain.ActivityEvent{
		Kind:      domain.ActivityLoginFailed,
		SubjectID: email,
		Timestamp: time.Now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event domain.ActivityEvent) {
	if s.activity != nil {
		s.activity.Record(event)
	}
}
