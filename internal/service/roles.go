package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// RoleService handles role CRUD. Role membership lives in
// AssociationService.
type RoleService struct {
	mu    *sync.RWMutex
	roles RoleRepository
	links LinkRepository
	audit AuditLog
	clock Clock
}

// RoleServiceConfig holds configuration for the role service.
type RoleServiceConfig struct {
	Lock  *sync.RWMutex
	Roles RoleRepository
	Links LinkRepository
	Audit AuditLog
	Clock Clock
}

// NewRoleService creates a new role service.
func NewRoleService(cfg RoleServiceConfig) *RoleService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &RoleService{
		mu:    cfg.Lock,
		roles: cfg.Roles,
		links: cfg.Links,
		audit: cfg.Audit,
		clock: cfg.Clock,
	}
}

// Create persists a new role. A taken id fails ErrRoleExists.
func (s *RoleService) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.roles.Exists, role.RoleID, ErrRoleExists); err != nil {
		return nil, err
	}
	if err := s.roles.Put(ctx, role); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "role", role.RoleID, s.clock.Now())
	return role, nil
}

// Get returns the role with the given id.
func (s *RoleService) Get(ctx context.Context, roleID int) (*model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, err := s.roles.Get(ctx, roleID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrRoleNotFound
	}
	return role, err
}

// All returns every role. An empty store is an error, not an empty list.
func (s *RoleService) All(ctx context.Context) ([]model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles, err := s.roles.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, ErrRoleListEmpty
	}
	return roles, nil
}

// Update replaces the stored role record wholesale.
func (s *RoleService) Update(ctx context.Context, roleID int, role *model.Role) (*model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.roles.Exists, roleID, ErrRoleNotFound); err != nil {
		return nil, err
	}
	role.RoleID = roleID
	if err := s.roles.Put(ctx, role); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "role", roleID, s.clock.Now())
	return role, nil
}

// Delete removes the role and every user-role row referencing it.
func (s *RoleService) Delete(ctx context.Context, roleID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.roles.Exists, roleID, ErrRoleNotFound); err != nil {
		return err
	}
	if err := s.links.ClearRole(ctx, roleID); err != nil {
		return err
	}
	if err := s.roles.Delete(ctx, roleID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "role", roleID, s.clock.Now())
	return nil
}

// IDs returns every role id. No emptiness gate.
func (s *RoleService) IDs(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roles, err := s.roles.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.RoleID)
	}
	return ids, nil
}
