package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// AttachmentRepository handles attachment data access.
type AttachmentRepository struct {
	store storage.Store
}

// NewAttachmentRepository creates a new attachment repository.
func NewAttachmentRepository(store storage.Store) *AttachmentRepository {
	return &AttachmentRepository{store: store}
}

// Get returns the attachment with the given id, or storage.ErrNotFound.
func (r *AttachmentRepository) Get(ctx context.Context, id int) (*model.Attachment, error) {
	return getRecord[model.Attachment](ctx, r.store, storage.KindAttachment, id)
}

// Put stores the attachment under its own id.
func (r *AttachmentRepository) Put(ctx context.Context, a *model.Attachment) error {
	return putRecord(ctx, r.store, storage.KindAttachment, a.AttachmentID, a)
}

// Delete removes the attachment, or returns storage.ErrNotFound.
func (r *AttachmentRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindAttachment, id)
}

// Exists reports whether an attachment with the given id is stored.
func (r *AttachmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindAttachment, id)
}

// All returns every attachment, ascending by id.
func (r *AttachmentRepository) All(ctx context.Context) ([]model.Attachment, error) {
	return scanRecords[model.Attachment](ctx, r.store, storage.KindAttachment)
}

// Count returns the number of stored attachments.
func (r *AttachmentRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindAttachment)
}

// ByTask returns every attachment on the given task.
func (r *AttachmentRepository) ByTask(ctx context.Context, taskID int) ([]model.Attachment, error) {
	return scanWhere(ctx, r.store, storage.KindAttachment, func(a *model.Attachment) bool {
		return a.TaskID == taskID
	})
}
