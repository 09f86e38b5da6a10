// Package memory provides the in-process user store. State lives for the
// lifetime of the process; there is no on-disk format.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// UserRepository is a mutex-guarded map of user records. The lock is held
// across the uniqueness check and the insert, so create is atomic within
// the process. List returns records in insertion order.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Username == username {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Email == email {
			return cloneUser(r.users[id]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.users[id].Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	for _, id := range r.order {
		if r.users[id].Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	stored := cloneUser(user)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.users[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneUser(stored), nil
}

func (r *UserRepository) UpdatePasswordHash(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *UserRepository) List(_ context.Context, skip, limit int) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(r.order) {
		return []*domain.User{}, nil
	}

	end := len(r.order)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}

	out := make([]*domain.User, 0, end-skip)
	for _, id := range r.order[skip:end] {
		out = append(out, cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
