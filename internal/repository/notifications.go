package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// NotificationRepository handles notification data access.
type NotificationRepository struct {
	store storage.Store
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(store storage.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Get returns the notification with the given id, or storage.ErrNotFound.
func (r *NotificationRepository) Get(ctx context.Context, id int) (*model.Notification, error) {
	return getRecord[model.Notification](ctx, r.store, storage.KindNotification, id)
}

// Put stores the notification under its own id.
func (r *NotificationRepository) Put(ctx context.Context, n *model.Notification) error {
	return putRecord(ctx, r.store, storage.KindNotification, n.NotificationID, n)
}

// Delete removes the notification, or returns storage.ErrNotFound.
func (r *NotificationRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindNotification, id)
}

// Exists reports whether a notification with the given id is stored.
func (r *NotificationRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindNotification, id)
}

// All returns every notification, ascending by id.
func (r *NotificationRepository) All(ctx context.Context) ([]model.Notification, error) {
	return scanRecords[model.Notification](ctx, r.store, storage.KindNotification)
}

// Count returns the number of stored notifications.
func (r *NotificationRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindNotification)
}

// ByUser returns every notification addressed to the given user.
func (r *NotificationRepository) ByUser(ctx context.Context, userID int) ([]model.Notification, error) {
	return scanWhere(ctx, r.store, storage.KindNotification, func(n *model.Notification) bool {
		return n.UserID == userID
	})
}
