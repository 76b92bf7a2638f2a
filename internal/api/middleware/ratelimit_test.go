package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubLimiter struct {
	allowed bool
	err     error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func runRateLimited(t *testing.T, limiter AttemptLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RateLimit(limiter)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	rec, called := runRateLimited(t, nil)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected passthrough, called=%v code=%d", called, rec.Code)
	}
}

func TestRateLimit_Allowed(t *testing.T) {
	rec, called := runRateLimited(t, &stubLimiter{allowed: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected request to pass, called=%v code=%d", called, rec.Code)
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	rec, called := runRateLimited(t, &stubLimiter{allowed: false})
	if called {
		t.Fatalf("next handler should not run when over the limit")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpenOnError(t *testing.T) {
	rec, called := runRateLimited(t, &stubLimiter{err: errors.New("redis down")})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("limiter errors must fail open, called=%v code=%d", called, rec.Code)
	}
}
