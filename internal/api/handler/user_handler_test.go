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

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id int) (*domain.User, error)
	listFn   func(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error)
	updateFn func(ctx context.Context, id int, patch ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id int, patch ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func sampleUser() *domain.User {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.User{
		ID:        1,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		FullName:  "Jane Doe",
		Role:      domain.RoleInstructor,
		Status:    domain.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			assert.Equal(t, "jane@example.com", input.Email)
			assert.Equal(t, "instructor", input.Role)
			return sampleUser(), nil
		},
	}
	h := NewUserHandler(svc)

	body := `{"email":"jane@example.com","first_name":"Jane","last_name":"Doe","role":"instructor"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/users", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "Jane Doe", resp.FullName)
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	body := `{"email":"jane@example.com","first_name":"Jane","last_name":"Doe","role":"superuser"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/users", body)

	err := h.Create(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	svc := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	}
	h := NewUserHandler(svc)

	body := `{"email":"jane@example.com","first_name":"Jane","last_name":"Doe","role":"student"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/users", body)

	err := h.Create(c)
	assert.True(t, errors.Is(err, domain.ErrEmailExists))
}

func TestUserHandler_Get(t *testing.T) {
	svc := &stubUserService{
		getFn: func(_ context.Context, id int) (*domain.User, error) {
			assert.Equal(t, 1, id)
			return sampleUser(), nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &stubUserService{
		getFn: func(context.Context, int) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/v1/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Get(c)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserHandler_Get_BadID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	for _, raw := range []string{"abc", "0", "-3"} {
		c, _ := newTestContext(t, http.MethodGet, "/v1/users/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := h.Get(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "id %q", raw)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{
		listFn: func(_ context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
			assert.Equal(t, "student", input.Role)
			assert.Equal(t, 2, input.Page)
			assert.Equal(t, 5, input.Limit)
			return &ports.ListUsersResult{
				Items:      []*domain.User{sampleUser()},
				Total:      11,
				Page:       2,
				Limit:      5,
				TotalPages: 3,
			}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/users?role=student&page=2&limit=5", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listUsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.EqualValues(t, 11, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestUserHandler_List_RejectsBadPagination(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/users?page=-1", "")
	err := h.List(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, id int, patch ports.UpdateUserInput) (*domain.User, error) {
			assert.Equal(t, 1, id)
			require.NotNil(t, patch.FirstName)
			assert.Equal(t, "Janet", *patch.FirstName)
			assert.Nil(t, patch.Email)

			u := sampleUser()
			u.FirstName = "Janet"
			u.FullName = "Janet Doe"
			return u, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/users/1", `{"first_name":"Janet"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Janet Doe")
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := 0
	svc := &stubUserService{
		deleteFn: func(_ context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, deleted)
}
