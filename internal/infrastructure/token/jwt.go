package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/project-api/internal/core/domain"
	"github.com/taskhive/project-api/internal/core/ports"
)

const defaultTTL = 2 * time.Hour

// Manager issues and verifies HS256-signed access tokens. The signing key is
// fixed at construction and never mutated afterwards.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. An empty secret is a configuration error and
// must abort startup; it is never a per-request condition.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

var _ ports.TokenManager = (*Manager)(nil)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user id and role, bounded by the
// configured expiry window.
func (m *Manager) Issue(tc ports.TokenClaims) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Role: tc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(tc.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Malformed, tampered and expired
// tokens all collapse into ErrInvalidToken; a token is fully valid or it is
// rejected.
func (m *Manager) Verify(tokenString string) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: domain.UserID(c.Subject), Role: c.Role}, nil
}
