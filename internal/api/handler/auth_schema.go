package handler

import "github.com/edulab/lms-api/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse echoes the issued token and the public identity snapshot.
// The secret never appears here.
type loginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int64           `json:"expires_in"`
	User      domain.Identity `json:"user"`
}

type profileResponse struct {
	User domain.Identity `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
