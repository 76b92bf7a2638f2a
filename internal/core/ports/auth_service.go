package ports

import (
	"context"

	"github.com/edulab/lms-api/internal/core/domain"
)

// TokenClaims is the identity decoded from a verified access token. The auth
// middleware extracts it once per request; it is never cached across requests.
type TokenClaims struct {
	UserID int
	Email  string
	Role   domain.Role
}

// LoginResult is returned on a successful login. The secret is never echoed.
type LoginResult struct {
	Token     string
	TokenType string // always "Bearer"
	ExpiresIn int64  // seconds until the token expires
	User      domain.Identity
}

// AuthService verifies credentials and issues access tokens. Tokens are
// self-contained: no session state survives between requests, and logout is
// a client-side signal only (a known limitation of this demo design).
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Profile projects the already-verified claims into the public identity.
	// The middleware guarantees claims are populated before this is reachable.
	Profile(ctx context.Context, claims TokenClaims) (*domain.Identity, error)
	// Logout acknowledges the request without revoking anything: issued
	// tokens stay valid until they expire.
	Logout(ctx context.Context) error
}
