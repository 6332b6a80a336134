package adapters

import (
	"context"
	"sync"
	"time"

	"task_backend/internal/feature/auth/domain"
	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/usecase"
)

// userMemory is the in-memory implementation of the UserRepository port.
// It lives for the process lifetime only and is safe for concurrent use;
// records are copied on the way in and out so no caller ever observes a
// half-written record.
type userMemory struct {
	mu      sync.RWMutex
	users   map[string]*entity.User
	byEmail map[string]string
}

var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory user store.
func NewUserMemory() *userMemory {
	return &userMemory{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *userMemory) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.EmailKey]; ok {
		return domain.ErrEmailAlreadyExists
	}

	cp := *u
	r.users[cp.ID] = &cp
	r.byEmail[cp.EmailKey] = cp.ID
	return nil
}

func (r *userMemory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *userMemory) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userMemory) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if other, taken := r.byEmail[u.EmailKey]; taken && other != u.ID {
		return domain.ErrEmailAlreadyExists
	}

	delete(r.byEmail, stored.EmailKey)

	cp := *u
	cp.UpdatedAt = time.Now()
	r.users[cp.ID] = &cp
	r.byEmail[cp.EmailKey] = cp.ID
	return nil
}

func (r *userMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, u.EmailKey)
	delete(r.users, id)
	return nil
}
