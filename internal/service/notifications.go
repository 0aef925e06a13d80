package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// NotificationService handles notifications: messages addressed to a
// user.
type NotificationService struct {
	mu            *sync.RWMutex
	notifications NotificationRepository
	users         UserRepository
	audit         AuditLog
	clock         Clock
}

// NotificationServiceConfig holds configuration for the notification service.
type NotificationServiceConfig struct {
	Lock          *sync.RWMutex
	Notifications NotificationRepository
	Users         UserRepository
	Audit         AuditLog
	Clock         Clock
}

// NewNotificationService creates a new notification service.
func NewNotificationService(cfg NotificationServiceConfig) *NotificationService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &NotificationService{
		mu:            cfg.Lock,
		notifications: cfg.Notifications,
		users:         cfg.Users,
		audit:         cfg.Audit,
		clock:         cfg.Clock,
	}
}

// Create persists a new notification. The id must be free and the
// addressed user must exist.
func (s *NotificationService) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.notifications.Exists, notification.NotificationID, ErrNotificationExists); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, notification.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.notifications.Put(ctx, notification); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "notification", notification.NotificationID, s.clock.Now())
	return notification, nil
}

// Get returns the notification with the given id.
func (s *NotificationService) Get(ctx context.Context, notificationID int) (*model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notification, err := s.notifications.Get(ctx, notificationID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotificationNotFound
	}
	return notification, err
}

// All returns every notification. An empty store is an error, not an
// empty list.
func (s *NotificationService) All(ctx context.Context) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications, err := s.notifications.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, ErrNotificationListEmpty
	}
	return notifications, nil
}

// Update replaces the stored notification record. The notification must
// exist and the addressed user must exist.
func (s *NotificationService) Update(ctx context.Context, notificationID int, notification *model.Notification) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.notifications.Exists, notificationID, ErrNotificationNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, notification.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	notification.NotificationID = notificationID
	if err := s.notifications.Put(ctx, notification); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "notification", notificationID, s.clock.Now())
	return notification, nil
}

// Delete removes the notification.
func (s *NotificationService) Delete(ctx context.Context, notificationID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.notifications.Exists, notificationID, ErrNotificationNotFound); err != nil {
		return err
	}
	if err := s.notifications.Delete(ctx, notificationID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "notification", notificationID, s.clock.Now())
	return nil
}

// ByUser returns the notifications addressed to the given user. Only a
// globally empty notification store is an error; no matches is an
// empty result.
func (s *NotificationService) ByUser(ctx context.Context, userID int) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.notifications.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotificationListEmpty
	}
	return s.notifications.ByUser(ctx, userID)
}
