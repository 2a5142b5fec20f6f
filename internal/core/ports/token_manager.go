package ports

import "github.com/taskhive/project-api/internal/core/domain"

// TokenClaims is the identity payload carried inside an access token.
type TokenClaims struct {
	UserID domain.UserID
	Role   string
}

// TokenManager issues and verifies signed bearer tokens. Tokens are
// stateless: expiry is the only lifecycle bound, there is no revocation.
type TokenManager interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}
