package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// ProjectService handles project CRUD and the date- and task-derived
// project queries.
type ProjectService struct {
	mu       *sync.RWMutex
	projects ProjectRepository
	users    UserRepository
	tasks    TaskRepository
	cascade  cascadeRepos
	audit    AuditLog
	clock    Clock
}

// ProjectServiceConfig holds configuration for the project service.
type ProjectServiceConfig struct {
	Lock     *sync.RWMutex
	Projects ProjectRepository
	Users    UserRepository
	Tasks    TaskRepository
	Cascade  cascadeRepos
	Audit    AuditLog
	Clock    Clock
}

// NewProjectService creates a new project service.
func NewProjectService(cfg ProjectServiceConfig) *ProjectService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &ProjectService{
		mu:       cfg.Lock,
		projects: cfg.Projects,
		users:    cfg.Users,
		tasks:    cfg.Tasks,
		cascade:  cfg.Cascade,
		audit:    cfg.Audit,
		clock:    cfg.Clock,
	}
}

// Create persists a new project. The id must be free and the owner
// user must exist.
func (s *ProjectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.projects.Exists, project.ProjectID, ErrProjectExists); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, project.OwnerUserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.projects.Put(ctx, project); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "project", project.ProjectID, s.clock.Now())
	return project, nil
}

// Get returns the project with the given id.
func (s *ProjectService) Get(ctx context.Context, projectID int) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, err := s.projects.Get(ctx, projectID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return project, err
}

// All returns every project. An empty store is an error, not an empty
// list.
func (s *ProjectService) All(ctx context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects, err := s.projects.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrProjectListEmpty
	}
	return projects, nil
}

// Update replaces the stored project record. The project must exist and
// the new owner user must exist.
func (s *ProjectService) Update(ctx context.Context, projectID int, project *model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.projects.Exists, projectID, ErrProjectNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, project.OwnerUserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	project.ProjectID = projectID
	if err := s.projects.Put(ctx, project); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "project", projectID, s.clock.Now())
	return project, nil
}

// Delete removes the project and every task it owns, with each task's
// comments, attachments and category links.
func (s *ProjectService) Delete(ctx context.Context, projectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.projects.Exists, projectID, ErrProjectNotFound); err != nil {
		return err
	}
	if err := deleteProjectTree(ctx, s.cascade, projectID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "project", projectID, s.clock.Now())
	return nil
}

// ByUser returns the projects owned by the given user. Only a globally
// empty project store is an error; no matches is an empty result.
func (s *ProjectService) ByUser(ctx context.Context, userID int) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.projects.ByOwner(ctx, userID)
}

// Ongoing returns the projects whose date span covers today, both ends
// inclusive.
func (s *ProjectService) Ongoing(ctx context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	projects, err := s.projects.All(ctx)
	if err != nil {
		return nil, err
	}
	today := dateOnly(s.clock.Now())
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		start, end := dateOnly(p.StartDate), dateOnly(p.EndDate)
		if !start.After(today) && !end.Before(today) {
			out = append(out, p)
		}
	}
	return out, nil
}

// WithTaskStatus returns the projects having at least one task with the
// given status.
func (s *ProjectService) WithTaskStatus(ctx context.Context, status model.Status) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.withMatchingTask(ctx, func(t *model.Task) bool {
		return t.Status == status
	})
}

// WithHighPriorityTasks returns the projects having at least one
// high-priority task.
func (s *ProjectService) WithHighPriorityTasks(ctx context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.withMatchingTask(ctx, func(t *model.Task) bool {
		return t.Priority == model.PriorityHigh
	})
}

// InDateRange returns the projects starting on or after start and
// ending on or before end.
func (s *ProjectService) InDateRange(ctx context.Context, start, end time.Time) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	projects, err := s.projects.All(ctx)
	if err != nil {
		return nil, err
	}
	lo, hi := dateOnly(start), dateOnly(end)
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if !dateOnly(p.StartDate).Before(lo) && !dateOnly(p.EndDate).After(hi) {
			out = append(out, p)
		}
	}
	return out, nil
}

// requireNonEmpty applies the global-empty rule for the derived queries.
func (s *ProjectService) requireNonEmpty(ctx context.Context) error {
	count, err := s.projects.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrProjectListEmpty
	}
	return nil
}

// withMatchingTask returns the projects owning at least one task
// accepted by match, preserving project scan order.
func (s *ProjectService) withMatchingTask(ctx context.Context, match func(*model.Task) bool) ([]model.Project, error) {
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	hit := make(map[int]bool)
	for i := range tasks {
		if match(&tasks[i]) {
			hit[tasks[i].OwnerProjectID] = true
		}
	}
	projects, err := s.projects.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Project, 0, len(hit))
	for _, p := range projects {
		if hit[p.ProjectID] {
			out = append(out, p)
		}
	}
	return out, nil
}
