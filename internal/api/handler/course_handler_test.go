package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

type stubCourseService struct {
	createFn func(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error)
	getFn    func(ctx context.Context, id int) (*domain.Course, error)
	listFn   func(ctx context.Context, input ports.ListCoursesInput) (*ports.ListCoursesResult, error)
	updateFn func(ctx context.Context, id int, patch ports.UpdateCourseInput) (*domain.Course, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubCourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	return s.createFn(ctx, input)
}

func (s *stubCourseService) Get(ctx context.Context, id int) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) List(ctx context.Context, input ports.ListCoursesInput) (*ports.ListCoursesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubCourseService) Update(ctx context.Context, id int, patch ports.UpdateCourseInput) (*domain.Course, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubCourseService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func sampleCourse() *domain.Course {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.Course{
		ID:            1,
		Title:         "Go Basics",
		Description:   "An introduction",
		Level:         domain.LevelBeginner,
		DurationHours: 20,
		Price:         49.99,
		Status:        domain.CourseDraft,
		Instructor:    domain.Instructor{ID: 1, Name: "Jane Doe", Email: "jane@example.com"},
		Tags:          []string{"go"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

const validCourseBody = `{
	"title": "Go Basics",
	"description": "An introduction",
	"level": "beginner",
	"duration_hours": 20,
	"price": 49.99,
	"instructor": {"id": 1, "name": "Jane Doe", "email": "jane@example.com"},
	"tags": ["go"]
}`

func TestCourseHandler_Create(t *testing.T) {
	svc := &stubCourseService{
		createFn: func(_ context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
			assert.Equal(t, "Go Basics", input.Title)
			assert.Equal(t, "beginner", input.Level)
			assert.Equal(t, 1, input.Instructor.ID)
			return sampleCourse(), nil
		},
	}
	h := NewCourseHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/courses", validCourseBody)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.CourseDraft, resp.Status)
}

func TestCourseHandler_Create_MissingInstructor(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{})

	body := `{"title":"Go Basics","description":"x","level":"beginner","duration_hours":20}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/courses", body)

	err := h.Create(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCourseHandler_Create_BadLevel(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{})

	body := `{"title":"Go Basics","description":"x","level":"expert","duration_hours":20,"instructor":{"id":1,"name":"J","email":"j@example.com"}}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/courses", body)

	err := h.Create(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	svc := &stubCourseService{
		getFn: func(context.Context, int) (*domain.Course, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	h := NewCourseHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/v1/courses/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.Get(c)
	assert.True(t, errors.Is(err, domain.ErrCourseNotFound))
}

func TestCourseHandler_List_Filters(t *testing.T) {
	svc := &stubCourseService{
		listFn: func(_ context.Context, input ports.ListCoursesInput) (*ports.ListCoursesResult, error) {
			assert.Equal(t, "published", input.Status)
			assert.Equal(t, "go", input.Tag)
			require.NotNil(t, input.MaxPrice)
			assert.Equal(t, 50.0, *input.MaxPrice)
			return &ports.ListCoursesResult{
				Items:      []*domain.Course{sampleCourse()},
				Total:      1,
				Page:       1,
				Limit:      10,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewCourseHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/courses?status=published&tag=go&max_price=50", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listCoursesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Pagination.Total)
	assert.Len(t, resp.Data, 1)
}

func TestCourseHandler_Update_Publish(t *testing.T) {
	svc := &stubCourseService{
		updateFn: func(_ context.Context, id int, patch ports.UpdateCourseInput) (*domain.Course, error) {
			assert.Equal(t, 1, id)
			require.NotNil(t, patch.Status)
			assert.Equal(t, "published", *patch.Status)
			assert.Nil(t, patch.Title)

			course := sampleCourse()
			course.Status = domain.CoursePublished
			return course, nil
		},
	}
	h := NewCourseHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/courses/1", `{"status":"published"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "published")
}

func TestCourseHandler_Update_BadRating(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{})

	c, _ := newTestContext(t, http.MethodPatch, "/v1/courses/1", `{"rating":7.5}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Update(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCourseHandler_Delete(t *testing.T) {
	svc := &stubCourseService{
		deleteFn: func(_ context.Context, id int) error {
			assert.Equal(t, 4, id)
			return nil
		},
	}
	h := NewCourseHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/courses/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
