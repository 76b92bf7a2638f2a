package handler

import "github.com/edulab/lms-api/internal/core/domain"

type instructorRequest struct {
	ID    int    `json:"id"    validate:"required,gte=1"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// createCourseRequest deliberately has no status, rating, or enrollment
// fields: a new course always starts as a draft with both counters zeroed.
type createCourseRequest struct {
	Title         string            `json:"title"          validate:"required"`
	Description   string            `json:"description"    validate:"required"`
	Level         string            `json:"level"          validate:"required,oneof=beginner intermediate advanced"`
	DurationHours int               `json:"duration_hours" validate:"required,gt=0"`
	Price         float64           `json:"price"          validate:"gte=0"`
	Instructor    instructorRequest `json:"instructor"     validate:"required"`
	Tags          []string          `json:"tags"`
}

type updateCourseRequest struct {
	Title            *string            `json:"title"`
	Description      *string            `json:"description"`
	Level            *string            `json:"level"          validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationHours    *int               `json:"duration_hours" validate:"omitempty,gt=0"`
	Price            *float64           `json:"price"          validate:"omitempty,gte=0"`
	Status           *string            `json:"status"         validate:"omitempty,oneof=draft published archived"`
	Instructor       *instructorRequest `json:"instructor"`
	Tags             *[]string          `json:"tags"`
	Rating           *float64           `json:"rating"            validate:"omitempty,gte=0,lte=5"`
	EnrolledStudents *int               `json:"enrolled_students" validate:"omitempty,gte=0"`
}

type listCoursesQuery struct {
	Search       string   `query:"search"`
	Level        string   `query:"level"  validate:"omitempty,oneof=beginner intermediate advanced"`
	Status       string   `query:"status" validate:"omitempty,oneof=draft published archived"`
	InstructorID int      `query:"instructor_id" validate:"omitempty,gte=1"`
	Tag          string   `query:"tag"`
	MinPrice     *float64 `query:"min_price" validate:"omitempty,gte=0"`
	MaxPrice     *float64 `query:"max_price" validate:"omitempty,gte=0"`
	Page         int      `query:"page"  validate:"omitempty,gte=1"`
	Limit        int      `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type listCoursesResponse struct {
	Data       []*domain.Course   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
