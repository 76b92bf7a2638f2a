package ports

import (
	"context"

	"github.com/edulab/lms-api/internal/core/domain"
)

// InstructorInput is the denormalized instructor snapshot supplied with a
// course. It is copied onto the course and never re-resolved afterwards.
type InstructorInput struct {
	ID    int
	Name  string
	Email string
}

// CreateCourseInput carries all data needed to create a course. Status is
// not accepted here: every course starts as a draft.
type CreateCourseInput struct {
	Title         string
	Description   string
	Level         string
	DurationHours int
	Price         float64
	Instructor    InstructorInput
	Tags          []string
}

// UpdateCourseInput is a partial patch: nil fields are left untouched.
type UpdateCourseInput struct {
	Title            *string
	Description      *string
	Level            *string
	DurationHours    *int
	Price            *float64
	Status           *string
	Instructor       *InstructorInput
	Tags             *[]string
	Rating           *float64
	EnrolledStudents *int
}

// ListCoursesInput carries all parameters for the course list endpoint.
type ListCoursesInput struct {
	Search       string
	Level        string
	Status       string
	InstructorID int
	Tag          string
	MinPrice     *float64
	MaxPrice     *float64
	Page         int
	Limit        int
}

// ListCoursesResult is the paginated listing envelope.
type ListCoursesResult struct {
	Items      []*domain.Course
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CourseService defines use-case operations for courses.
type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
	Get(ctx context.Context, id int) (*domain.Course, error)
	List(ctx context.Context, input ListCoursesInput) (*ListCoursesResult, error)
	Update(ctx context.Context, id int, patch UpdateCourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id int) error
}
