package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// ProjectRepository handles project data access.
type ProjectRepository struct {
	store storage.Store
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(store storage.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Get returns the project with the given id, or storage.ErrNotFound.
func (r *ProjectRepository) Get(ctx context.Context, id int) (*model.Project, error) {
	return getRecord[model.Project](ctx, r.store, storage.KindProject, id)
}

// Put stores the project under its own id.
func (r *ProjectRepository) Put(ctx context.Context, p *model.Project) error {
	return putRecord(ctx, r.store, storage.KindProject, p.ProjectID, p)
}

// Delete removes the project, or returns storage.ErrNotFound.
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindProject, id)
}

// Exists reports whether a project with the given id is stored.
func (r *ProjectRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindProject, id)
}

// All returns every project, ascending by id.
func (r *ProjectRepository) All(ctx context.Context) ([]model.Project, error) {
	return scanRecords[model.Project](ctx, r.store, storage.KindProject)
}

// Count returns the number of stored projects.
func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindProject)
}

// ByOwner returns every project owned by the given user.
func (r *ProjectRepository) ByOwner(ctx context.Context, userID int) ([]model.Project, error) {
	return scanWhere(ctx, r.store, storage.KindProject, func(p *model.Project) bool {
		return p.OwnerUserID == userID
	})
}
