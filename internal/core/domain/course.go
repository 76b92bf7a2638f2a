package domain

import "time"

// CourseLevel is the declared difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// CourseStatus is the publication lifecycle state. Every course starts as
// draft regardless of what the creation request asked for.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// Instructor is a denormalized snapshot of the teaching user, owned by the
// course. It is not a live join: deleting the user leaves the snapshot as-is.
type Instructor struct {
	ID    int    `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Course is a published unit of learning content.
type Course struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Level            CourseLevel  `json:"level"`
	DurationHours    int          `json:"duration_hours"`
	Price            float64      `json:"price"`
	Status           CourseStatus `json:"status"`
	Instructor       Instructor   `json:"instructor"`
	Tags             []string     `json:"tags"`
	Rating           float64      `json:"rating"`
	EnrolledStudents int          `json:"enrolled_students"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
