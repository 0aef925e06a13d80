package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// dueSoonWindowDays is how far ahead DueSoon looks, exclusive.
const dueSoonWindowDays = 3

// TaskService handles task CRUD, the due-date queries and the
// status/priority/ownership filters.
type TaskService struct {
	mu         *sync.RWMutex
	tasks      TaskRepository
	projects   ProjectRepository
	users      UserRepository
	categories CategoryRepository
	links      LinkRepository
	cascade    cascadeRepos
	audit      AuditLog
	clock      Clock
}

// TaskServiceConfig holds configuration for the task service.
type TaskServiceConfig struct {
	Lock       *sync.RWMutex
	Tasks      TaskRepository
	Projects   ProjectRepository
	Users      UserRepository
	Categories CategoryRepository
	Links      LinkRepository
	Cascade    cascadeRepos
	Audit      AuditLog
	Clock      Clock
}

// NewTaskService creates a new task service.
func NewTaskService(cfg TaskServiceConfig) *TaskService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &TaskService{
		mu:         cfg.Lock,
		tasks:      cfg.Tasks,
		projects:   cfg.Projects,
		users:      cfg.Users,
		categories: cfg.Categories,
		links:      cfg.Links,
		cascade:    cfg.Cascade,
		audit:      cfg.Audit,
		clock:      cfg.Clock,
	}
}

// Create persists a new task. The id must be free and both owners, the
// project and the user, must exist.
func (s *TaskService) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.tasks.Exists, task.TaskID, ErrTaskExists); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.projects.Exists, task.OwnerProjectID, ErrProjectNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, task.OwnerUserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.tasks.Put(ctx, task); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "task", task.TaskID, s.clock.Now())
	return task, nil
}

// Get returns the task with the given id.
func (s *TaskService) Get(ctx context.Context, taskID int) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, err := s.tasks.Get(ctx, taskID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	return task, err
}

// All returns every task. An empty store is an error, not an empty list.
func (s *TaskService) All(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrTaskListEmpty
	}
	return tasks, nil
}

// Update replaces the stored task record. The task must exist and both
// referenced owners must exist.
func (s *TaskService) Update(ctx context.Context, taskID int, task *model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.projects.Exists, task.OwnerProjectID, ErrProjectNotFound); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.users.Exists, task.OwnerUserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	task.TaskID = taskID
	if err := s.tasks.Put(ctx, task); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "task", taskID, s.clock.Now())
	return task, nil
}

// Delete removes the task, its comments and attachments, and its
// category links.
func (s *TaskService) Delete(ctx context.Context, taskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return err
	}
	if err := deleteTaskTree(ctx, s.cascade, taskID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "task", taskID, s.clock.Now())
	return nil
}

// Overdue returns the tasks whose due date lies strictly before today.
// Only a globally empty task store is an error.
func (s *TaskService) Overdue(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	today := dateOnly(s.clock.Now())
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if dateOnly(t.DueDate).Before(today) {
			out = append(out, t)
		}
	}
	return out, nil
}

// DueSoon returns the tasks due strictly after today and strictly
// before today plus three days.
func (s *TaskService) DueSoon(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	today := dateOnly(s.clock.Now())
	horizon := today.AddDate(0, 0, dueSoonWindowDays)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		due := dateOnly(t.DueDate)
		if due.After(today) && due.Before(horizon) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ByStatus returns the tasks with the given status.
func (s *TaskService) ByStatus(ctx context.Context, status model.Status) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.tasks.ByStatus(ctx, status)
}

// ByPriority returns the tasks with the given priority.
func (s *TaskService) ByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.tasks.ByPriority(ctx, priority)
}

// ByUser returns the tasks owned by the given user.
func (s *TaskService) ByUser(ctx context.Context, userID int) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.tasks.ByUser(ctx, userID)
}

// ByUserAndStatus returns the tasks owned by the given user that carry
// the given status.
func (s *TaskService) ByUserAndStatus(ctx context.Context, userID int, status model.Status) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

// ByProject returns the tasks belonging to the given project.
func (s *TaskService) ByProject(ctx context.Context, projectID int) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	return s.tasks.ByProject(ctx, projectID)
}

// ByCategory returns the tasks linked to the given category, in link
// order.
func (s *TaskService) ByCategory(ctx context.Context, categoryID int) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireNonEmpty(ctx); err != nil {
		return nil, err
	}
	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return nil, err
	}
	taskIDs, err := s.links.TaskIDsOf(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(taskIDs))
	for _, id := range taskIDs {
		task, err := s.tasks.Get(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *task)
	}
	return out, nil
}

// CountForProject returns how many tasks belong to the project. A plain
// count; no emptiness gate.
func (s *TaskService) CountForProject(ctx context.Context, projectID int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tasks.CountByProject(ctx, projectID)
}

// IDs returns every task id. An empty store is an error.
func (s *TaskService) IDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrTaskListEmpty
	}
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.TaskID)
	}
	return ids, nil
}

// AssignCategories links the task to each listed category, one row per
// entry, duplicates included.
func (s *TaskService) AssignCategories(ctx context.Context, taskID int, categoryIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return err
	}
	for _, categoryID := range categoryIDs {
		if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
			return err
		}
		if err := s.links.LinkTaskCategory(ctx, taskID, categoryID); err != nil {
			return err
		}
	}
	recordAudit(ctx, s.audit, "link", "task-category", taskID, s.clock.Now())
	return nil
}

// requireNonEmpty applies the global-empty rule for the derived queries.
func (s *TaskService) requireNonEmpty(ctx context.Context) error {
	count, err := s.tasks.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTaskListEmpty
	}
	return nil
}
