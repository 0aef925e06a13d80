package service

import (
	"sync"

	"github.com/crewdesk/crewdesk/internal/repository"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// Core wires every service over one storage.Store and one shared
// read-write lock, so each logical operation's check-then-write
// sequence is atomic with respect to every other operation. Mutations
// take the write lock, reads the read lock; a delete racing a read of
// the same id resolves by lock acquisition order.
type Core struct {
	Identity      *IdentityService
	Roles         *RoleService
	Projects      *ProjectService
	Tasks         *TaskService
	Categories    *CategoryService
	Comments      *CommentService
	Attachments   *AttachmentService
	Notifications *NotificationService
	Associations  *AssociationService

	store storage.Store
}

// CoreConfig holds configuration for the core.
type CoreConfig struct {
	Store storage.Store
	Audit AuditLog
	Clock Clock
}

// NewCore creates every repository and service over the given store.
func NewCore(cfg CoreConfig) *Core {
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	lock := &sync.RWMutex{}

	users := repository.NewUserRepository(cfg.Store)
	roles := repository.NewRoleRepository(cfg.Store)
	projects := repository.NewProjectRepository(cfg.Store)
	tasks := repository.NewTaskRepository(cfg.Store)
	categories := repository.NewCategoryRepository(cfg.Store)
	comments := repository.NewCommentRepository(cfg.Store)
	attachments := repository.NewAttachmentRepository(cfg.Store)
	notifications := repository.NewNotificationRepository(cfg.Store)
	links := repository.NewLinkRepository(cfg.Store)

	cascade := cascadeRepos{
		users:         users,
		projects:      projects,
		tasks:         tasks,
		comments:      comments,
		attachments:   attachments,
		notifications: notifications,
		links:         links,
	}

	return &Core{
		Identity: NewIdentityService(IdentityServiceConfig{
			Lock:    lock,
			Users:   users,
			Roles:   roles,
			Tasks:   tasks,
			Links:   links,
			Cascade: cascade,
			Audit:   cfg.Audit,
			Clock:   cfg.Clock,
		}),
		Roles: NewRoleService(RoleServiceConfig{
			Lock:  lock,
			Roles: roles,
			Links: links,
			Audit: cfg.Audit,
			Clock: cfg.Clock,
		}),
		Projects: NewProjectService(ProjectServiceConfig{
			Lock:     lock,
			Projects: projects,
			Users:    users,
			Tasks:    tasks,
			Cascade:  cascade,
			Audit:    cfg.Audit,
			Clock:    cfg.Clock,
		}),
		Tasks: NewTaskService(TaskServiceConfig{
			Lock:       lock,
			Tasks:      tasks,
			Projects:   projects,
			Users:      users,
			Categories: categories,
			Links:      links,
			Cascade:    cascade,
			Audit:      cfg.Audit,
			Clock:      cfg.Clock,
		}),
		Categories: NewCategoryService(CategoryServiceConfig{
			Lock:       lock,
			Categories: categories,
			Links:      links,
			Audit:      cfg.Audit,
			Clock:      cfg.Clock,
		}),
		Comments: NewCommentService(CommentServiceConfig{
			Lock:     lock,
			Comments: comments,
			Tasks:    tasks,
			Users:    users,
			Audit:    cfg.Audit,
			Clock:    cfg.Clock,
		}),
		Attachments: NewAttachmentService(AttachmentServiceConfig{
			Lock:        lock,
			Attachments: attachments,
			Tasks:       tasks,
			Audit:       cfg.Audit,
			Clock:       cfg.Clock,
		}),
		Notifications: NewNotificationService(NotificationServiceConfig{
			Lock:          lock,
			Notifications: notifications,
			Users:         users,
			Audit:         cfg.Audit,
			Clock:         cfg.Clock,
		}),
		Associations: NewAssociationService(AssociationServiceConfig{
			Lock:       lock,
			Users:      users,
			Roles:      roles,
			Tasks:      tasks,
			Categories: categories,
			Links:      links,
			Audit:      cfg.Audit,
			Clock:      cfg.Clock,
		}),
		store: cfg.Store,
	}
}

// Close releases the underlying store.
func (c *Core) Close() error {
	return c.store.Close()
}
