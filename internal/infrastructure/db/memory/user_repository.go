package memory

import (
	"context"
	"sync"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
	"github.com/edulab/lms-api/internal/core/query"
)

// UserRepository is the in-memory implementation of ports.UserRepository.
// Records are stored by value and cloned on the way in and out so callers
// can never mutate the store through a shared pointer.
type UserRepository struct {
	mu    sync.Mutex
	store *store[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{store: newStore[domain.User]()}
}

func (r *UserRepository) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.allocID(), nil
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness is re-checked under the lock so concurrent inserts cannot
	// both pass the service-level check.
	for _, existing := range r.store.all() {
		if existing.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	return r.store.insert(user.ID, *user)
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.store.all() {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return toPointers(r.store.all()), nil
}

func (r *UserRepository) Replace(_ context.Context, id int, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.replace(id, *user) {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.remove(id) {
		return domain.ErrUserNotFound
	}
	return nil
}

// List runs the query engine over the full collection under the lock.
func (r *UserRepository) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page, err := query.Run(r.store.all(), userPredicates(filter), filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	return toPointers(page.Data), page.Total, nil
}

func userPredicates(filter ports.ListUsersFilter) []query.Predicate[domain.User] {
	var preds []query.Predicate[domain.User]
	if filter.Search != "" {
		search := filter.Search
		preds = append(preds, func(u domain.User) bool {
			return query.ContainsFold(u.FirstName, search) ||
				query.ContainsFold(u.LastName, search) ||
				query.ContainsFold(u.FullName, search) ||
				query.ContainsFold(u.Email, search)
		})
	}
	if filter.Role != "" {
		role := domain.Role(filter.Role)
		preds = append(preds, func(u domain.User) bool { return u.Role == role })
	}
	if filter.Status != "" {
		status := domain.UserStatus(filter.Status)
		preds = append(preds, func(u domain.User) bool { return u.Status == status })
	}
	return preds
}

func toPointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		item := items[i]
		out[i] = &item
	}
	return out
}
