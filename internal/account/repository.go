package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository keeps user records in process memory. All account state
// is transient: nothing survives a restart.
type Repository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID

	now func() time.Time
}

// NewRepository constructs an empty in-memory user store.
func NewRepository() *Repository {
	return &Repository{
		byID:    make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

// CreateUser persists a new user record. Emails are unique,
// case-sensitive as stored.
func (r *Repository) CreateUser(ctx context.Context, name, email, password, planName string, limitBytes int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return User{}, ErrEmailExists
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Password:     password,
		Plan:         planName,
		StorageUsed:  0,
		StorageLimit: limitBytes,
		CreatedAt:    r.now().UTC(),
	}

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID
	return user, nil
}

// FindUserByEmail fetches a user by exact email match.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

// FindUserByID fetches the authoritative record for a user.
func (r *Repository) FindUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// ApplyUsageDelta adds deltaBytes to the user's storage usage, clamped
// at zero. No upper clamp: the ceiling is enforced at admission time
// by the caller, never retroactively.
func (r *Repository) ApplyUsageDelta(ctx context.Context, userID uuid.UUID, deltaBytes int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}

	user.StorageUsed += deltaBytes
	if user.StorageUsed < 0 {
		user.StorageUsed = 0
	}

	r.byID[userID] = user
	return user, nil
}

// UpdatePlan replaces the user's plan and storage limit. Usage is left
// untouched even when it now exceeds the new limit.
func (r *Repository) UpdatePlan(ctx context.Context, userID uuid.UUID, planName string, limitBytes int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}

	user.Plan = planName
	user.StorageLimit = limitBytes

	r.byID[userID] = user
	return user, nil
}
