package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

// ============================================
// Registered users
// ============================================

type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	ReplaceAll(ctx context.Context, users []User) error
}

type userRepository struct {
	users *collection[User]
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{users: newCollection[User](s, store.KeyRegisteredUsers)}
}

func (r *userRepository) FindAll(ctx context.Context) ([]User, error) {
	return r.users.list(ctx)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.users.find(ctx, func(u *User) bool { return u.ID == id })
}

// FindByEmail matches the address exactly, case included.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.users.find(ctx, func(u *User) bool { return u.Email == email })
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	return r.users.append(ctx, *user)
}

func (r *userRepository) Update(ctx context.Context, user *User) error {
	return r.users.update(ctx, func(users []User) ([]User, error) {
		next := make([]User, len(users))
		copy(next, users)
		for i := range next {
			if next[i].ID == user.ID {
				next[i] = *user
				return next, nil
			}
		}
		return nil, ErrNotFound
	})
}

func (r *userRepository) ReplaceAll(ctx context.Context, users []User) error {
	return r.users.replace(ctx, users)
}

// ============================================
// Authenticated user (auth_user)
// ============================================

type SessionRepository interface {
	// Current returns nil when nobody is signed in.
	Current(ctx context.Context) (*User, error)
	Set(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store store.Store
}

func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) Current(ctx context.Context) (*User, error) {
	return store.Load[*User](ctx, r.store, store.KeyAuthUser, nil)
}

func (r *sessionRepository) Set(ctx context.Context, user *User) error {
	return store.Save(ctx, r.store, store.KeyAuthUser, user)
}

// Clear writes JSON null rather than deleting, matching a signed-out browser.
func (r *sessionRepository) Clear(ctx context.Context) error {
	return store.Save[*User](ctx, r.store, store.KeyAuthUser, nil)
}
