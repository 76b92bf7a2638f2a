package ports

import (
	"context"

	"github.com/edulab/lms-api/internal/core/domain"
)

// ListUsersFilter carries all query parameters for listing users. All filters
// are optional and combined with AND semantics.
type ListUsersFilter struct {
	Search string // case-insensitive substring match on name fields and email
	Role   string // exact match on role
	Status string // exact match on account status
	Page   int    // 1-based
	Limit  int    // rows per page
}

// UserRepository defines storage operations for users. Identifiers are
// allocated from a monotonic counter and never reused, even after deletion.
type UserRepository interface {
	// NextID allocates the next identifier. The caller assigns it to the
	// record before Insert.
	NextID(ctx context.Context) (int, error)
	// Insert appends the record. Returns domain.ErrIDExists when the id is
	// already present and domain.ErrEmailExists on an email collision.
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAll returns every user in insertion order.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Replace swaps the stored record wholesale, preserving its position in
	// the listing order.
	Replace(ctx context.Context, id int, user *domain.User) error
	Remove(ctx context.Context, id int) error
	// List returns a page of users matching filter and the filtered total.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
