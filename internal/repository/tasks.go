package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// TaskRepository handles task data access.
type TaskRepository struct {
	store storage.Store
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(store storage.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// Get returns the task with the given id, or storage.ErrNotFound.
func (r *TaskRepository) Get(ctx context.Context, id int) (*model.Task, error) {
	return getRecord[model.Task](ctx, r.store, storage.KindTask, id)
}

// Put stores the task under its own id.
func (r *TaskRepository) Put(ctx context.Context, t *model.Task) error {
	return putRecord(ctx, r.store, storage.KindTask, t.TaskID, t)
}

// Delete removes the task, or returns storage.ErrNotFound.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	return r.store.Remove(ctx, storage.KindTask, id)
}

// Exists reports whether a task with the given id is stored.
func (r *TaskRepository) Exists(ctx context.Context, id int) (bool, error) {
	return existsRecord(ctx, r.store, storage.KindTask, id)
}

// All returns every task, ascending by id.
func (r *TaskRepository) All(ctx context.Context) ([]model.Task, error) {
	return scanRecords[model.Task](ctx, r.store, storage.KindTask)
}

// Count returns the number of stored tasks.
func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.store, storage.KindTask)
}

// ByUser returns every task owned by the given user.
func (r *TaskRepository) ByUser(ctx context.Context, userID int) ([]model.Task, error) {
	return scanWhere(ctx, r.store, storage.KindTask, func(t *model.Task) bool {
		return t.OwnerUserID == userID
	})
}

// ByProject returns every task belonging to the given project.
func (r *TaskRepository) ByProject(ctx context.Context, projectID int) ([]model.Task, error) {
	return scanWhere(ctx, r.store, storage.KindTask, func(t *model.Task) bool {
		return t.OwnerProjectID == projectID
	})
}

// ByStatus returns every task with the given status.
func (r *TaskRepository) ByStatus(ctx context.Context, status model.Status) ([]model.Task, error) {
	return scanWhere(ctx, r.store, storage.KindTask, func(t *model.Task) bool {
		return t.Status == status
	})
}

// ByPriority returns every task with the given priority.
func (r *TaskRepository) ByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error) {
	return scanWhere(ctx, r.store, storage.KindTask, func(t *model.Task) bool {
		return t.Priority == priority
	})
}

// CountByProject returns the number of tasks belonging to the given project.
func (r *TaskRepository) CountByProject(ctx context.Context, projectID int) (int, error) {
	tasks, err := r.ByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}
