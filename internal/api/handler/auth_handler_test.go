package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/lms-api/internal/api/middleware"
	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	profileFn func(ctx context.Context, claims ports.TokenClaims) (*domain.Identity, error)
	logoutFn  func(ctx context.Context) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, claims ports.TokenClaims) (*domain.Identity, error) {
	return s.profileFn(ctx, claims)
}

func (s *stubAuthService) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setClaims(c echo.Context, id int, email, role string) {
	c.Set(middleware.CtxUserID, id)
	c.Set(middleware.CtxEmail, email)
	c.Set(middleware.CtxRole, role)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "password123", password)
			return &ports.LoginResult{
				Token:     "signed-token",
				TokenType: "Bearer",
				ExpiresIn: 604800,
				User:      domain.Identity{ID: 3, Email: email, Name: "Sam Student", Role: domain.RoleStudent},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"password123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.EqualValues(t, 604800, resp.ExpiresIn)
	assert.Equal(t, 3, resp.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"wrong"}`)
	err := h.Login(c)
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := &stubAuthService{
		profileFn: func(_ context.Context, claims ports.TokenClaims) (*domain.Identity, error) {
			assert.Equal(t, 3, claims.UserID)
			assert.Equal(t, domain.RoleStudent, claims.Role)
			return &domain.Identity{ID: 3, Email: claims.Email, Name: "Sam Student", Role: claims.Role}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/auth/profile", "")
	setClaims(c, 3, "user@example.com", "student")

	require.NoError(t, h.Profile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp profileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sam Student", resp.User.Name)
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/auth/profile", "")
	err := h.Profile(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{
		logoutFn: func(context.Context) error { return nil },
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	setClaims(c, 3, "user@example.com", "student")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}
