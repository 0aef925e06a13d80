package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// AttachmentService handles attachments: file references owned by a
// task.
type AttachmentService struct {
	mu          *sync.RWMutex
	attachments AttachmentRepository
	tasks       TaskRepository
	audit       AuditLog
	clock       Clock
}

// AttachmentServiceConfig holds configuration for the attachment service.
type AttachmentServiceConfig struct {
	Lock        *sync.RWMutex
	Attachments AttachmentRepository
	Tasks       TaskRepository
	Audit       AuditLog
	Clock       Clock
}

// NewAttachmentService creates a new attachment service.
func NewAttachmentService(cfg AttachmentServiceConfig) *AttachmentService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &AttachmentService{
		mu:          cfg.Lock,
		attachments: cfg.Attachments,
		tasks:       cfg.Tasks,
		audit:       cfg.Audit,
		clock:       cfg.Clock,
	}
}

// Create persists a new attachment. The id must be free and the owning
// task must exist.
func (s *AttachmentService) Create(ctx context.Context, attachment *model.Attachment) (*model.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.attachments.Exists, attachment.AttachmentID, ErrAttachmentExists); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.tasks.Exists, attachment.TaskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	if err := s.attachments.Put(ctx, attachment); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "attachment", attachment.AttachmentID, s.clock.Now())
	return attachment, nil
}

// Get returns the attachment with the given id.
func (s *AttachmentService) Get(ctx context.Context, attachmentID int) (*model.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attachment, err := s.attachments.Get(ctx, attachmentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrAttachmentNotFound
	}
	return attachment, err
}

// All returns every attachment. An empty store is an error, not an
// empty list.
func (s *AttachmentService) All(ctx context.Context) ([]model.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attachments, err := s.attachments.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(attachments) == 0 {
		return nil, ErrAttachmentListEmpty
	}
	return attachments, nil
}

// Update replaces the stored attachment record. The attachment must
// exist and the referenced task must exist.
func (s *AttachmentService) Update(ctx context.Context, attachmentID int, attachment *model.Attachment) (*model.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.attachments.Exists, attachmentID, ErrAttachmentNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.tasks.Exists, attachment.TaskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	attachment.AttachmentID = attachmentID
	if err := s.attachments.Put(ctx, attachment); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "attachment", attachmentID, s.clock.Now())
	return attachment, nil
}

// Delete removes the attachment.
func (s *AttachmentService) Delete(ctx context.Context, attachmentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.attachments.Exists, attachmentID, ErrAttachmentNotFound); err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "attachment", attachmentID, s.clock.Now())
	return nil
}

// ByTask returns the attachments on the given task. Only a globally
// empty attachment store is an error; no matches is an empty result.
func (s *AttachmentService) ByTask(ctx context.Context, taskID int) ([]model.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.attachments.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAttachmentListEmpty
	}
	return s.attachments.ByTask(ctx, taskID)
}

// IDs returns every attachment id. No emptiness gate.
func (s *AttachmentService) IDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attachments, err := s.attachments.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(attachments))
	for _, a := range attachments {
		ids = append(ids, a.AttachmentID)
	}
	return ids, nil
}
