package service

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
)

// Repository interfaces consumed by the services. The concrete
// implementations live in internal/repository; services depend only on
// these contracts so tests can substitute fault-injecting fakes.

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Get(ctx context.Context, id int) (*model.User, error)
	Put(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
	ByUserName(ctx context.Context, name string) (*model.User, error)
	ByEmailSuffix(ctx context.Context, suffix string) ([]model.User, error)
	ByFullName(ctx context.Context, fullName string) ([]model.User, error)
}

// RoleRepository defines the interface for role storage.
type RoleRepository interface {
	Get(ctx context.Context, id int) (*model.Role, error)
	Put(ctx context.Context, r *model.Role) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Role, error)
	Count(ctx context.Context) (int, error)
}

// ProjectRepository defines the interface for project storage.
type ProjectRepository interface {
	Get(ctx context.Context, id int) (*model.Project, error)
	Put(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Project, error)
	Count(ctx context.Context) (int, error)
	ByOwner(ctx context.Context, userID int) ([]model.Project, error)
}

// TaskRepository defines the interface for task storage.
type TaskRepository interface {
	Get(ctx context.Context, id int) (*model.Task, error)
	Put(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Task, error)
	Count(ctx context.Context) (int, error)
	ByUser(ctx context.Context, userID int) ([]model.Task, error)
	ByProject(ctx context.Context, projectID int) ([]model.Task, error)
	ByStatus(ctx context.Context, status model.Status) ([]model.Task, error)
	ByPriority(ctx context.Context, priority model.Priority) ([]model.Task, error)
	CountByProject(ctx context.Context, projectID int) (int, error)
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Get(ctx context.Context, id int) (*model.Category, error)
	Put(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Category, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Get(ctx context.Context, id int) (*model.Comment, error)
	Put(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Comment, error)
	Count(ctx context.Context) (int, error)
	ByTask(ctx context.Context, taskID int) ([]model.Comment, error)
	ByUser(ctx context.Context, userID int) ([]model.Comment, error)
}

// AttachmentRepository defines the interface for attachment storage.
type AttachmentRepository interface {
	Get(ctx context.Context, id int) (*model.Attachment, error)
	Put(ctx context.Context, a *model.Attachment) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Attachment, error)
	Count(ctx context.Context) (int, error)
	ByTask(ctx context.Context, taskID int) ([]model.Attachment, error)
}

// NotificationRepository defines the interface for notification storage.
type NotificationRepository interface {
	Get(ctx context.Context, id int) (*model.Notification, error)
	Put(ctx context.Context, n *model.Notification) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]model.Notification, error)
	Count(ctx context.Context) (int, error)
	ByUser(ctx context.Context, userID int) ([]model.Notification, error)
}

// LinkRepository defines the interface for the two association tables.
type LinkRepository interface {
	LinkUserRole(ctx context.Context, userID, roleID int) error
	UnlinkUserRole(ctx context.Context, userID, roleID int) error
	RoleIDsOf(ctx context.Context, userID int) ([]int, error)
	UserIDsOf(ctx context.Context, roleID int) ([]int, error)
	UserRolePairs(ctx context.Context) ([]model.Pair, error)
	LinkTaskCategory(ctx context.Context, taskID, categoryID int) error
	UnlinkTaskCategory(ctx context.Context, taskID, categoryID int) error
	CategoryIDsOf(ctx context.Context, taskID int) ([]int, error)
	TaskIDsOf(ctx context.Context, categoryID int) ([]int, error)
	TaskCategoryPairs(ctx context.Context) ([]model.Pair, error)
	ClearUser(ctx context.Context, userID int) error
	ClearRole(ctx context.Context, roleID int) error
	ClearTask(ctx context.Context, taskID int) error
	ClearCategory(ctx context.Context, categoryID int) error
}
