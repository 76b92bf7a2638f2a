package ports

import (
	"context"

	"github.com/edulab/lms-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user. The service
// assigns the id, timestamps, and the derived full name.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	Status    string // defaults to "active" when empty
	Phone     string
	Bio       string
}

// UpdateUserInput is a partial patch: nil fields are left untouched. The
// identifier and creation timestamp can never be patched.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
	Status    *string
	Phone     *string
	Bio       *string
}

// ListUsersInput carries all parameters for the user list endpoint.
type ListUsersInput struct {
	Search string
	Role   string
	Status string
	Page   int
	Limit  int
}

// ListUsersResult is the paginated listing envelope. Total counts the
// filtered set, not the whole store.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	Update(ctx context.Context, id int, patch UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
