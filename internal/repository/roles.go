package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// RoleRepository handles role data access.
type RoleRepository struct {
	store storage.Store
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(store storage.Store) *RoleRepository {
	return &RoleRepository{store: store}
}

// Get returns the role with the given id, or storage.ErrNotFound.
func (r *RoleRepository) Get(ctx context.Context, id int) (*model.Role, error) {
	return getRecord[model.Role](ctx, r.store, storage.KindRole, id)
}

// Put stores the role under its own id.
func (r *RoleRepository) Put(ctx context.Context, role *model.Role) error {
	return putRecord(ctx, r.store, storage.KindRole, role.RoleID, role)
}

// Delete removes the role, or returns storage.ErrNotFound.
func (r *RoleRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindRole, id)
}

// Exists reports whether a role with the given id is stored.
func (r *RoleRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindRole, id)
}

// All returns every role, ascending by id.
func (r *RoleRepository) All(ctx context.Context) ([]model.Role, error) {
	return scanRecords[model.Role](ctx, r.store, storage.KindRole)
}

// Count returns the number of stored roles.
func (r *RoleRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindRole)
}
