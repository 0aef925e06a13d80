package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// CommentService handles comments: annotations owned by a task and
// authored by a user.
type CommentService struct {
	mu       *sync.RWMutex
	comments CommentRepository
	tasks    TaskRepository
	users    UserRepository
	audit    AuditLog
	clock    Clock
}

// CommentServiceConfig holds configuration for the comment service.
type CommentServiceConfig struct {
	Lock     *sync.RWMutex
	Comments CommentRepository
	Tasks    TaskRepository
	Users    UserRepository
	Audit    AuditLog
	Clock    Clock
}

// NewCommentService creates a new comment service.
func NewCommentService(cfg CommentServiceConfig) *CommentService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &CommentService{
		mu:       cfg.Lock,
		comments: cfg.Comments,
		tasks:    cfg.Tasks,
		users:    cfg.Users,
		audit:    cfg.Audit,
		clock:    cfg.Clock,
	}
}

// Create persists a new comment. The id must be free and both the task
// and the author must exist.
func (s *CommentService) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.comments.Exists, comment.CommentID, ErrCommentExists); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.tasks.Exists, comment.TaskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, comment.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.comments.Put(ctx, comment); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "comment", comment.CommentID, s.clock.Now())
	return comment, nil
}

// Get returns the comment with the given id.
func (s *CommentService) Get(ctx context.Context, commentID int) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, err := s.comments.Get(ctx, commentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	return comment, err
}

// All returns every comment. An empty store is an error, not an empty
// list.
func (s *CommentService) All(ctx context.Context) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments, err := s.comments.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrCommentListEmpty
	}
	return comments, nil
}

// Update replaces the stored comment record. The comment must exist and
// both referenced parents must exist.
func (s *CommentService) Update(ctx context.Context, commentID int, comment *model.Comment) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.comments.Exists, commentID, ErrCommentNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.tasks.Exists, comment.TaskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, comment.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	comment.CommentID = commentID
	if err := s.comments.Put(ctx, comment); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "comment", commentID, s.clock.Now())
	return comment, nil
}

// Delete removes the comment.
func (s *CommentService) Delete(ctx context.Context, commentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.comments.Exists, commentID, ErrCommentNotFound); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "comment", commentID, s.clock.Now())
	return nil
}

// ByTask returns the comments on the given task. Only a globally empty
// comment store is an error; no matches is an empty result.
func (s *CommentService) ByTask(ctx context.Context, taskID int) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.comments.ByTask(ctx, taskID)
}

// ByUser returns the comments authored by the given user, under the
// same global-empty rule as ByTask.
func (s *CommentService) ByUser(ctx context.Context, userID int) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.comments.ByUser(ctx, userID)
}

// IDs returns every comment id. No emptiness gate.
func (s *CommentService) IDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments, err := s.comments.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.CommentID)
	}
	return ids, nil
}

func (s *CommentService) requireNonEmpty(ctx context.Context) error {
	count, err := s.comments.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrCommentListEmpty
	}
	return nil
}
