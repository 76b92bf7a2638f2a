package ports

import (
	"context"

	"github.com/edulab/lms-api/internal/core/domain"
)

// ListCoursesFilter carries all query parameters for listing courses. All
// filters are optional and combined with AND semantics. MinPrice and MaxPrice
// are nil when unset so a zero price bound remains expressible.
type ListCoursesFilter struct {
	Search       string // case-insensitive substring match on title and description
	Level        string // exact match on difficulty level
	Status       string // exact match on publication status
	InstructorID int    // 0 = no filter
	Tag          string // exact match against any element of the tag list
	MinPrice     *float64
	MaxPrice     *float64
	Page         int // 1-based
	Limit        int // rows per page
}

// CourseRepository defines storage operations for courses.
type CourseRepository interface {
	NextID(ctx context.Context) (int, error)
	// Insert appends the record. Returns domain.ErrIDExists when the id is
	// already present.
	Insert(ctx context.Context, course *domain.Course) error
	FindByID(ctx context.Context, id int) (*domain.Course, error)
	// FindAll returns every course in insertion order.
	FindAll(ctx context.Context) ([]*domain.Course, error)
	Replace(ctx context.Context, id int, course *domain.Course) error
	Remove(ctx context.Context, id int) error
	// List returns a page of courses matching filter and the filtered total.
	List(ctx context.Context, filter ListCoursesFilter) ([]*domain.Course, int64, error)
}
