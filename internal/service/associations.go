package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// AssociationService manages the two many-to-many link tables:
// user-role and task-category. Link rows have no identity of their own
// and duplicates are permitted; linking the same pair twice stores two
// rows.
type AssociationService struct {
	mu         *sync.RWMutex
	users      UserRepository
	roles      RoleRepository
	tasks      TaskRepository
	categories CategoryRepository
	links      LinkRepository
	audit      AuditLog
	clock      Clock
}

// AssociationServiceConfig holds configuration for the association service.
type AssociationServiceConfig struct {
	Lock       *sync.RWMutex
	Users      UserRepository
	Roles      RoleRepository
	Tasks      TaskRepository
	Categories CategoryRepository
	Links      LinkRepository
	Audit      AuditLog
	Clock      Clock
}

// NewAssociationService creates a new association service.
func NewAssociationService(cfg AssociationServiceConfig) *AssociationService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &AssociationService{
		mu:         cfg.Lock,
		users:      cfg.Users,
		roles:      cfg.Roles,
		tasks:      cfg.Tasks,
		categories: cfg.Categories,
		links:      cfg.Links,
		audit:      cfg.Audit,
		clock:      cfg.Clock,
	}
}

// LinkUserRole inserts one user-role row. Both sides must exist; the
// insert itself is unconditional, so repeating it adds another row.
func (s *AssociationService) LinkUserRole(ctx context.Context, userID, roleID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.roles.Exists, roleID, ErrRoleNotFound); err != nil {
		return err
	}
	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return err
	}
	if err := s.links.LinkUserRole(ctx, userID, roleID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "link", "user-role", userID, s.clock.Now())
	return nil
}

// UnlinkUserRole removes every row for the user-role pair. Both sides
// must exist; whether the pair was ever linked is not distinguished.
func (s *AssociationService) UnlinkUserRole(ctx context.Context, roleID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.roles.Exists, roleID, ErrRoleNotFound); err != nil {
		return err
	}
	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return err
	}
	if err := s.links.UnlinkUserRole(ctx, userID, roleID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "unlink", "user-role", userID, s.clock.Now())
	return nil
}

// RolesOf returns the role ids linked to the user, in link order.
func (s *AssociationService) RolesOf(ctx context.Context, userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.roles.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRoleListEmpty
	}
	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	return s.links.RoleIDsOf(ctx, userID)
}

// RoleNamesOf returns the names of the roles linked to the user, in
// link order.
func (s *AssociationService) RoleNamesOf(ctx context.Context, userID int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	roleIDs, err := s.links.RoleIDsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		role, err := s.roles.Get(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		if err != nil {
			return nil, err
		}
		names = append(names, role.RoleName)
	}
	return names, nil
}

// UsersOf returns the user ids linked to the role, in link order.
func (s *AssociationService) UsersOf(ctx context.Context, roleID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := requirePresent(ctx, s.roles.Exists, roleID, ErrRoleNotFound); err != nil {
		return nil, err
	}
	return s.links.UserIDsOf(ctx, roleID)
}

// UserRolePairs returns every user-role row. Fails when either store is
// globally empty.
func (s *AssociationService) UserRolePairs(ctx context.Context) ([]model.Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roleCount, err := s.roles.Count(ctx)
	if err != nil {
		return nil, err
	}
	if roleCount == 0 {
		return nil, ErrRoleListEmpty
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, ErrUserListEmpty
	}
	return s.links.UserRolePairs(ctx)
}

// LinkTaskCategory inserts one task-category row. Both sides must
// exist; duplicates are permitted.
func (s *AssociationService) LinkTaskCategory(ctx context.Context, taskID, categoryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return err
	}
	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return err
	}
	if err := s.links.LinkTaskCategory(ctx, taskID, categoryID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "link", "task-category", taskID, s.clock.Now())
	return nil
}

// UnlinkTaskCategory removes every row for the task-category pair.
func (s *AssociationService) UnlinkTaskCategory(ctx context.Context, taskID, categoryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return err
	}
	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return err
	}
	if err := s.links.UnlinkTaskCategory(ctx, taskID, categoryID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "unlink", "task-category", taskID, s.clock.Now())
	return nil
}

// CategoriesOf returns the category ids linked to the task, in link
// order.
func (s *AssociationService) CategoriesOf(ctx context.Context, taskID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCategoryListEmpty
	}
	if err := requirePresent(ctx, s.tasks.Exists, taskID, ErrTaskNotFound); err != nil {
		return nil, err
	}
	return s.links.CategoryIDsOf(ctx, taskID)
}

// TasksOf returns the task ids linked to the category, in link order.
func (s *AssociationService) TasksOf(ctx context.Context, categoryID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrTaskListEmpty
	}
	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return nil, err
	}
	return s.links.TaskIDsOf(ctx, categoryID)
}

// TaskCategoryPairs returns every task-category row. Fails when either
// store is globally empty.
func (s *AssociationService) TaskCategoryPairs(ctx context.Context) ([]model.Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taskCount, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	if taskCount == 0 {
		return nil, ErrTaskListEmpty
	}
	categoryCount, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	if categoryCount == 0 {
		return nil, ErrCategoryListEmpty
	}
	return s.links.TaskCategoryPairs(ctx)
}
