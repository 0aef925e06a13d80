package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// CategoryRepository handles category data access.
type CategoryRepository struct {
	store storage.Store
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(store storage.Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Get returns the category with the given id, or storage.ErrNotFound.
func (r *CategoryRepository) Get(ctx context.Context, id int) (*model.Category, error) {
	return getRecord[model.Category](ctx, r.store, storage.KindCategory, id)
}

// Put stores the category under its own id.
func (r *CategoryRepository) Put(ctx context.Context, c *model.Category) error {
	return putRecord(ctx, r.store, storage.KindCategory, c.CategoryID, c)
}

// Delete removes the category, or returns storage.ErrNotFound.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindCategory, id)
}

// Exists reports whether a category with the given id is stored.
func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindCategory, id)
}

// All returns every category, ascending by id.
func (r *CategoryRepository) All(ctx context.Context) ([]model.Category, error) {
	return scanRecords[model.Category](ctx, r.store, storage.KindCategory)
}

// Count returns the number of stored categories.
func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindCategory)
}
