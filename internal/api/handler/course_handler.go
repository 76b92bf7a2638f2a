package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edulab/lms-api/internal/api/metrics"
	"github.com/edulab/lms-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /v1/courses. The new course is always a draft.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		Level:         req.Level,
		DurationHours: req.DurationHours,
		Price:         req.Price,
		Instructor: ports.InstructorInput{
			ID:    req.Instructor.ID,
			Name:  req.Instructor.Name,
			Email: req.Instructor.Email,
		},
		Tags: req.Tags,
	})
	if err != nil {
		return err
	}

	metrics.CoursesCreatedTotal.WithLabelValues(req.Level).Inc()
	return c.JSON(http.StatusCreated, course)
}

// Get handles GET /v1/courses/:id.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Course id"
// @Success      200  {object}  domain.Course
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	course, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// List handles GET /v1/courses with optional filters and pagination.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        search         query     string   false  "Substring match on title or description (case-insensitive)"
// @Param        level          query     string   false  "Filter by level"   Enums(beginner, intermediate, advanced)
// @Param        status         query     string   false  "Filter by status"  Enums(draft, published, archived)
// @Param        instructor_id  query     int      false  "Filter by instructor id"
// @Param        tag            query     string   false  "Filter by tag"
// @Param        min_price      query     number   false  "Minimum price"
// @Param        max_price      query     number   false  "Maximum price"
// @Param        page           query     int      false  "Page number (default 1)"
// @Param        limit          query     int      false  "Page size (default 10, max 100)"
// @Success      200            {object}  listCoursesResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Router       /v1/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	var q listCoursesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.List(c.Request().Context(), ports.ListCoursesInput{
		Search:       q.Search,
		Level:        q.Level,
		Status:       q.Status,
		InstructorID: q.InstructorID,
		Tag:          q.Tag,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCoursesResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update handles PATCH /v1/courses/:id. Patching status to "published" is
// how a draft course goes live.
//
// @Summary      Update a course (partial)
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Course id"
// @Param        body  body      updateCourseRequest  true  "Fields to update"
// @Success      200   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/courses/{id} [patch]
func (h *CourseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.UpdateCourseInput{
		Title:            req.Title,
		Description:      req.Description,
		Level:            req.Level,
		DurationHours:    req.DurationHours,
		Price:            req.Price,
		Status:           req.Status,
		Tags:             req.Tags,
		Rating:           req.Rating,
		EnrolledStudents: req.EnrolledStudents,
	}
	if req.Instructor != nil {
		patch.Instructor = &ports.InstructorInput{
			ID:    req.Instructor.ID,
			Name:  req.Instructor.Name,
			Email: req.Instructor.Email,
		}
	}

	course, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete handles DELETE /v1/courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Course id"
// @Success      204  "No Content"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("course").Inc()
	return c.NoContent(http.StatusNoContent)
}
