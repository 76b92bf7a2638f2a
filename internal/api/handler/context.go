package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulab/lms-api/internal/api/middleware"
	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty role proves the
// middleware ran on this route.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.CtxUserID).(int)
	email, _ := c.Get(middleware.CtxEmail).(string)

	return ports.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}
