package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService verifies logins against a fixed credential table and issues
// HS256 access tokens. There is no server-side session: every protected
// request re-verifies its token independently.
type AuthService struct {
	credentials []domain.Credential
	jwtSecret   string
	tokenTTL    time.Duration
	logger      zerolog.Logger
}

func NewAuthService(credentials []domain.Credential, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		credentials: credentials,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login matches email and secret against the credential table. Both fields
// are compared in constant time and the failure is always the same
// ErrInvalidCredentials, so the response never reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var matched *domain.Credential
	for i := range s.credentials {
		cred := &s.credentials[i]
		emailOK := subtle.ConstantTimeCompare([]byte(cred.Email), []byte(email)) == 1
		secretOK := subtle.ConstantTimeCompare([]byte(cred.Secret), []byte(password)) == 1
		if emailOK && secretOK {
			matched = cred
		}
	}
	if matched == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(matched.Identity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", matched.Identity.Email).Str("role", string(matched.Identity.Role)).Msg("login succeeded")

	return &ports.LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
		User:      matched.Identity,
	}, nil
}

// Profile projects verified claims into the public identity. The auth
// middleware is responsible for making this unreachable without a valid
// token; the empty-claims check is a backstop, not a re-verification.
func (s *AuthService) Profile(ctx context.Context, claims ports.TokenClaims) (*domain.Identity, error) {
	if claims.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	for i := range s.credentials {
		if s.credentials[i].Identity.ID == claims.UserID {
			identity := s.credentials[i].Identity
			return &identity, nil
		}
	}
	// Claims verified but no longer in the table: still answer from the
	// claims themselves, the token is the source of truth.
	return &domain.Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// Logout is a no-op acknowledgment. Issued tokens cannot be revoked in this
// design and stay valid until expiry; a real deployment needs a revocation
// list or short-lived tokens with refresh rotation.
func (s *AuthService) Logout(ctx context.Context) error {
	s.logger.Debug().Msg("logout acknowledged (tokens are not revocable)")
	return nil
}

func (s *AuthService) generateToken(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"role":  string(identity.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
