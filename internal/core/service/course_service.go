package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
	"github.com/edulab/lms-api/internal/core/query"
)

// CourseService implements CRUD over courses. Creation always lands in draft
// with zeroed rating and enrollment, whatever the request asked for.
type CourseService struct {
	repo   ports.CourseRepository
	logger zerolog.Logger

	// mu serializes read-modify-write sequences; see UserService.
	mu sync.Mutex
}

func NewCourseService(repo ports.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// Create allocates the next id and inserts the course as a draft. Status,
// rating, and enrolled count cannot be set at creation time.
func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	course := &domain.Course{
		ID:            id,
		Title:         input.Title,
		Description:   input.Description,
		Level:         domain.CourseLevel(input.Level),
		DurationHours: input.DurationHours,
		Price:         input.Price,
		Status:        domain.CourseDraft,
		Instructor: domain.Instructor{
			ID:    input.Instructor.ID,
			Name:  input.Instructor.Name,
			Email: input.Instructor.Email,
		},
		Tags:             tags,
		Rating:           0,
		EnrolledStudents: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create course")
		return nil, err
	}

	s.logger.Info().Int("course_id", course.ID).Str("title", course.Title).Str("level", input.Level).Msg("course created")
	return course, nil
}

func (s *CourseService) Get(ctx context.Context, id int) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) List(ctx context.Context, input ports.ListCoursesInput) (*ports.ListCoursesResult, error) {
	page, limit := input.Page, input.Limit
	if page == 0 {
		page = query.DefaultPage
	}
	if limit == 0 {
		limit = query.DefaultLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListCoursesFilter{
		Search:       input.Search,
		Level:        input.Level,
		Status:       input.Status,
		InstructorID: input.InstructorID,
		Tag:          input.Tag,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListCoursesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}

// Update merges only the supplied fields over the stored record. Publishing
// happens here: a draft course goes live by patching status to "published".
func (s *CourseService) Update(ctx context.Context, id int, patch ports.UpdateCourseInput) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Level != nil {
		course.Level = domain.CourseLevel(*patch.Level)
	}
	if patch.DurationHours != nil {
		course.DurationHours = *patch.DurationHours
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.Status != nil {
		course.Status = domain.CourseStatus(*patch.Status)
	}
	if patch.Instructor != nil {
		course.Instructor = domain.Instructor{
			ID:    patch.Instructor.ID,
			Name:  patch.Instructor.Name,
			Email: patch.Instructor.Email,
		}
	}
	if patch.Tags != nil {
		course.Tags = *patch.Tags
	}
	if patch.Rating != nil {
		course.Rating = *patch.Rating
	}
	if patch.EnrolledStudents != nil {
		course.EnrolledStudents = *patch.EnrolledStudents
	}
	course.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int("course_id", id).Msg("course updated")
	return course, nil
}

// Delete removes the course permanently. Courses referencing a deleted
// instructor elsewhere keep their denormalized snapshot; there is no cascade.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("course_id", id).Msg("course deleted")
	return nil
}
