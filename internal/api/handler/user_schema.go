package handler

import "github.com/edulab/lms-api/internal/core/domain"

type createUserRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Role      string `json:"role"       validate:"required,oneof=student instructor admin"`
	Status    string `json:"status"     validate:"omitempty,oneof=active inactive suspended"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
}

// updateUserRequest is a partial patch: absent fields stay untouched, so
// every field is a pointer. Id and creation timestamp are not patchable and
// have no fields here.
type updateUserRequest struct {
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"       validate:"omitempty,oneof=student instructor admin"`
	Status    *string `json:"status"     validate:"omitempty,oneof=active inactive suspended"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
}

type listUsersQuery struct {
	Search string `query:"search"`
	Role   string `query:"role"   validate:"omitempty,oneof=student instructor admin"`
	Status string `query:"status" validate:"omitempty,oneof=active inactive suspended"`
	Page   int    `query:"page"   validate:"omitempty,gte=1"`
	Limit  int    `query:"limit"  validate:"omitempty,gte=1,lte=100"`
}

type listUsersResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
