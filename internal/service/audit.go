package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewdesk/crewdesk/internal/model"
)

// AuditLog receives one event per successful mutation. A nil AuditLog
// disables auditing.
type AuditLog interface {
	Record(ctx context.Context, event model.AuditEvent) error
}

// MemoryAuditLog is an in-process AuditLog that keeps events in order.
type MemoryAuditLog struct {
	mu     sync.Mutex
	events []model.AuditEvent
}

// NewMemoryAuditLog creates an empty in-memory audit log.
func NewMemoryAuditLog() *MemoryAuditLog {
	return &MemoryAuditLog{}
}

// Record appends the event.
func (l *MemoryAuditLog) Record(_ context.Context, event model.AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

// Events returns a copy of the recorded events in record order.
func (l *MemoryAuditLog) Events() []model.AuditEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.AuditEvent, len(l.events))
	copy(out, l.events)
	return out
}

// recordAudit logs one mutation. Audit failures never fail the mutation
// itself; the event is best-effort.
func recordAudit(ctx context.Context, log AuditLog, op, entity string, entityID int, now time.Time) {
	if log == nil {
		return
	}
	_ = log.Record(ctx, model.AuditEvent{
		ID:       uuid.NewString(),
		Op:       op,
		Entity:   entity,
		EntityID: entityID,
		At:       now,
	})
}
