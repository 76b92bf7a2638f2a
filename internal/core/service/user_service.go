package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
	"github.com/edulab/lms-api/internal/core/query"
)

// UserService implements CRUD over user accounts, enforcing email uniqueness
// and the derived full-name invariant.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger

	// mu serializes read-modify-write sequences (uniqueness-check-then-insert,
	// find-then-replace) so concurrent requests cannot lose updates or slip a
	// duplicate email past the check.
	mu sync.Mutex
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create allocates the next id, stamps timestamps, derives the full name and
// inserts the user. A duplicate email fails with domain.ErrEmailExists before
// anything is mutated.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(domain.Role(input.Role)) {
		return nil, domain.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	status := domain.UserStatus(input.Status)
	if status == "" {
		status = domain.UserActive
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        id,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		FullName:  domain.ComposeFullName(input.FirstName, input.LastName),
		Role:      domain.Role(input.Role),
		Status:    status,
		Phone:     input.Phone,
		Bio:       input.Bio,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// List delegates filtering and pagination to the repository and wraps the
// result in the standard envelope.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page, limit := input.Page, input.Limit
	if page == 0 {
		page = query.DefaultPage
	}
	if limit == 0 {
		limit = query.DefaultLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		Search: input.Search,
		Role:   input.Role,
		Status: input.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: query.TotalPages(total, limit),
	}, nil
}

// Update merges only the supplied fields over the stored record. The full
// name is recomputed whenever either name part changes; id and creation
// timestamp are immutable.
func (s *UserService) Update(ctx context.Context, id int, patch ports.UpdateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, *patch.Email); err == nil && existing.ID != id {
			return nil, domain.ErrEmailExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.FirstName != nil || patch.LastName != nil {
		user.FullName = domain.ComposeFullName(user.FirstName, user.LastName)
	}
	if patch.Role != nil {
		if !domain.ValidRole(domain.Role(*patch.Role)) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = domain.Role(*patch.Role)
	}
	if patch.Status != nil {
		user.Status = domain.UserStatus(*patch.Status)
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", id).Msg("user updated")
	return user, nil
}

// Delete removes the user permanently. The id is never reassigned.
func (s *UserService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
