package memory

import (
	"context"
	"sync"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
	"github.com/edulab/lms-api/internal/core/query"
)

// CourseRepository is the in-memory implementation of ports.CourseRepository.
type CourseRepository struct {
	mu    sync.Mutex
	store *store[domain.Course]
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{store: newStore[domain.Course]()}
}

func (r *CourseRepository) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.allocID(), nil
}

func (r *CourseRepository) Insert(_ context.Context, course *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.insert(course.ID, *course)
}

func (r *CourseRepository) FindByID(_ context.Context, id int) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.store.get(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return &course, nil
}

func (r *CourseRepository) FindAll(_ context.Context) ([]*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return toPointers(r.store.all()), nil
}

func (r *CourseRepository) Replace(_ context.Context, id int, course *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.replace(id, *course) {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.remove(id) {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) List(_ context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page, err := query.Run(r.store.all(), coursePredicates(filter), filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	return toPointers(page.Data), page.Total, nil
}

func coursePredicates(filter ports.ListCoursesFilter) []query.Predicate[domain.Course] {
	var preds []query.Predicate[domain.Course]
	if filter.Search != "" {
		search := filter.Search
		preds = append(preds, func(c domain.Course) bool {
			return query.ContainsFold(c.Title, search) || query.ContainsFold(c.Description, search)
		})
	}
	if filter.Level != "" {
		level := domain.CourseLevel(filter.Level)
		preds = append(preds, func(c domain.Course) bool { return c.Level == level })
	}
	if filter.Status != "" {
		status := domain.CourseStatus(filter.Status)
		preds = append(preds, func(c domain.Course) bool { return c.Status == status })
	}
	if filter.InstructorID != 0 {
		id := filter.InstructorID
		preds = append(preds, func(c domain.Course) bool { return c.Instructor.ID == id })
	}
	if filter.Tag != "" {
		tag := filter.Tag
		preds = append(preds, func(c domain.Course) bool {
			for _, t := range c.Tags {
				if t == tag {
					return true
				}
			}
			return false
		})
	}
	if filter.MinPrice != nil {
		min := *filter.MinPrice
		preds = append(preds, func(c domain.Course) bool { return c.Price >= min })
	}
	if filter.MaxPrice != nil {
		max := *filter.MaxPrice
		preds = append(preds, func(c domain.Course) bool { return c.Price <= max })
	}
	return preds
}
