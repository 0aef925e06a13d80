package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// CommentRepository handles comment data access.
type CommentRepository struct {
	store storage.Store
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(store storage.Store) *CommentRepository {
	return &CommentRepository{store: store}
}

// Get returns the comment with the given id, or storage.ErrNotFound.
func (r *CommentRepository) Get(ctx context.Context, id int) (*model.Comment, error) {
	return getRecord[model.Comment](ctx, r.store, storage.KindComment, id)
}

// Put stores the comment under its own id.
func (r *CommentRepository) Put(ctx context.Context, c *model.Comment) error {
	return putRecord(ctx, r.store, storage.KindComment, c.CommentID, c)
}

// Delete removes the comment, or returns storage.ErrNotFound.
func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindComment, id)
}

// Exists reports whether a comment with the given id is stored.
func (r *CommentRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindComment, id)
}

// All returns every comment, ascending by id.
func (r *CommentRepository) All(ctx context.Context) ([]model.Comment, error) {
	return scanRecords[model.Comment](ctx, r.store, storage.KindComment)
}

// Count returns the number of stored comments.
func (r *CommentRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindComment)
}

// ByTask returns every comment attached to the given task.
func (r *CommentRepository) ByTask(ctx context.Context, taskID int) ([]model.Comment, error) {
	return scanWhere(ctx, r.store, storage.KindComment, func(c *model.Comment) bool {
		return c.TaskID == taskID
	})
}

// ByUser returns every comment authored by the given user.
func (r *CommentRepository) ByUser(ctx context.Context, userID int) ([]model.Comment, error) {
	return scanWhere(ctx, r.store, storage.KindComment, func(c *model.Comment) bool {
		return c.UserID == userID
	})
}
