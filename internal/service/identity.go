package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// IdentityService handles user accounts: CRUD, the credential check and
// the user-derived queries.
type IdentityService struct {
	mu      *sync.RWMutex
	users   UserRepository
	roles   RoleRepository
	tasks   TaskRepository
	links   LinkRepository
	cascade cascadeRepos
	audit   AuditLog
	clock   Clock
}

// IdentityServiceConfig holds configuration for the identity service.
type IdentityServiceConfig struct {
	Lock    *sync.RWMutex
	Users   UserRepository
	Roles   RoleRepository
	Tasks   TaskRepository
	Links   LinkRepository
	Cascade cascadeRepos
	Audit   AuditLog
	Clock   Clock
}

// NewIdentityService creates a new identity service.
func NewIdentityService(cfg IdentityServiceConfig) *IdentityService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &IdentityService{
		mu:      cfg.Lock,
		users:   cfg.Users,
		roles:   cfg.Roles,
		tasks:   cfg.Tasks,
		links:   cfg.Links,
		cascade: cfg.Cascade,
		audit:   cfg.Audit,
		clock:   cfg.Clock,
	}
}

// Create persists a new user. The id is caller-assigned; a taken id
// fails ErrUserExists.
func (s *IdentityService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.users.Exists, user.UserID, ErrUserExists); err != nil {
		return nil, err
	}
	if err := s.users.Put(ctx, user); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "user", user.UserID, s.clock.Now())
	return user, nil
}

// Get returns the user with the given id.
func (s *IdentityService) Get(ctx context.Context, userID int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// All returns every user. An empty store is an error, not an empty list.
func (s *IdentityService) All(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserListEmpty
	}
	return users, nil
}

// Update replaces the stored user record wholesale.
func (s *IdentityService) Update(ctx context.Context, userID int, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return nil, err
	}
	user.UserID = userID
	if err := s.users.Put(ctx, user); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "user", userID, s.clock.Now())
	return user, nil
}

// Delete removes the user and everything they own: their projects (with
// those projects' tasks), their remaining tasks, the comments they
// authored, their notifications and their role links.
func (s *IdentityService) Delete(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.users.Exists, userID, ErrUserNotFound); err != nil {
		return err
	}
	if err := deleteUserTree(ctx, s.cascade, userID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "user", userID, s.clock.Now())
	return nil
}

// Authenticate checks the username and password. The stored password is
// compared by exact string equality; this mirrors the system it
// replaces and is deliberately not hardened.
func (s *IdentityService) Authenticate(ctx context.Context, userName, password string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.ByUserName(ctx, userName)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.Password != password {
		return ErrInvalidCredentials
	}
	return nil
}

// ByUserName returns the user with the given username.
func (s *IdentityService) ByUserName(ctx context.Context, userName string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.ByUserName(ctx, userName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// IDByUserName returns the id of the user with the given username.
func (s *IdentityService) IDByUserName(ctx context.Context, userName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.ByUserName(ctx, userName)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return user.UserID, nil
}

// ByEmailDomain returns the users whose email ends with the given
// suffix. An empty match set fails ErrUserNotFound; the identity
// queries predate the list-empty convention and error on no matches.
func (s *IdentityService) ByEmailDomain(ctx context.Context, domain string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.ByEmailSuffix(ctx, domain)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users, nil
}

// ByFullName returns the users with exactly the given full name. An
// empty match set fails ErrUserNotFound, same as ByEmailDomain.
func (s *IdentityService) ByFullName(ctx context.Context, fullName string) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.ByFullName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users, nil
}

// WithMostTasks returns the users owning the maximal number of tasks.
// Ties are all returned. With no tasks stored every user ties at zero.
func (s *IdentityService) WithMostTasks(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserListEmpty
	}
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(users))
	for _, t := range tasks {
		counts[t.OwnerUserID]++
	}
	max := 0
	for _, u := range users {
		if counts[u.UserID] > max {
			max = counts[u.UserID]
		}
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if counts[u.UserID] == max {
			out = append(out, u)
		}
	}
	return out, nil
}

// WithCompletedTasks returns the users owning at least one completed
// task. Only an empty user store is an error; no completed tasks just
// means an empty result.
func (s *IdentityService) WithCompletedTasks(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserListEmpty
	}
	completed, err := s.tasks.ByStatus(ctx, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	owners := make(map[int]bool, len(completed))
	for _, t := range completed {
		owners[t.OwnerUserID] = true
	}
	out := make([]model.User, 0, len(owners))
	for _, u := range users {
		if owners[u.UserID] {
			out = append(out, u)
		}
	}
	return out, nil
}

// WithRoles returns every user joined with their role names. Fails
// ErrUserListEmpty or ErrRoleListEmpty when either store is empty.
func (s *IdentityService) WithRoles(ctx context.Context) ([]model.UserWithRoles, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserListEmpty
	}
	roles, err := s.roles.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, ErrRoleListEmpty
	}
	names := make(map[int]string, len(roles))
	for _, r := range roles {
		names[r.RoleID] = r.RoleName
	}
	out := make([]model.UserWithRoles, 0, len(users))
	for _, u := range users {
		roleIDs, err := s.links.RoleIDsOf(ctx, u.UserID)
		if err != nil {
			return nil, err
		}
		roleNames := make([]string, 0, len(roleIDs))
		for _, id := range roleIDs {
			roleNames = append(roleNames, names[id])
		}
		out = append(out, model.UserWithRoles{
			UserID:    u.UserID,
			FullName:  u.FullName,
			Email:     u.Email,
			RoleNames: roleNames,
		})
	}
	return out, nil
}

// RoleIDsByUserName returns the role ids linked to the user with the
// given username.
func (s *IdentityService) RoleIDsByUserName(ctx context.Context, userName string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.ByUserName(ctx, userName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.links.RoleIDsOf(ctx, user.UserID)
}

// IDs returns every user id. An empty store yields an empty slice, not
// an error.
func (s *IdentityService) IDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	return ids, nil
}
