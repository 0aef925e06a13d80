package repository

import (
	"context"
	"strings"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// UserRepository handles user data access.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Get returns the user with the given id, or storage.ErrNotFound.
func (r *UserRepository) Get(ctx context.Context, id int) (*model.User, error) {
	return getRecord[model.User](ctx, r.store, storage.KindUser, id)
}

// Put stores the user under its own id.
func (r *UserRepository) Put(ctx context.Context, u *model.User) error {
	return putRecord(ctx, r.store, storage.KindUser, u.UserID, u)
}

// Delete removes the user, or returns storage.ErrNotFound.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindUser, id)
}

// Exists reports whether a user with the given id is stored.
func (r *UserRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindUser, id)
}

// All returns every user, ascending by id.
func (r *UserRepository) All(ctx context.Context) ([]model.User, error) {
	return scanRecords[model.User](ctx, r.store, storage.KindUser)
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindUser)
}

// ByUserName returns the user with the given username, or storage.ErrNotFound.
// Usernames are treated as unique; the first match wins.
func (r *UserRepository) ByUserName(ctx context.Context, name string) (*model.User, error) {
	users, err := scanWhere(ctx, r.store, storage.KindUser, func(u *model.User) bool {
		return u.UserName == name
	})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, storage.ErrNotFound
	}
	return &users[0], nil
}

// ByEmailSuffix returns every user whose email ends with the given suffix.
func (r *UserRepository) ByEmailSuffix(ctx context.Context, suffix string) ([]model.User, error) {
	return scanWhere(ctx, r.store, storage.KindUser, func(u *model.User) bool {
		return strings.HasSuffix(u.Email, suffix)
	})
}

// ByFullName returns every user with exactly the given full name.
func (r *UserRepository) ByFullName(ctx context.Context, fullName string) ([]model.User, error) {
	return scanWhere(ctx, r.store, storage.KindUser, func(u *model.User) bool {
		return u.FullName == fullName
	})
}
