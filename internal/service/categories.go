package service

import (
	"context"
	"errors"
	"sync"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// CategoryService handles category CRUD. Task membership lives in
// AssociationService; categories hold no join state of their own.
type CategoryService struct {
	mu         *sync.RWMutex
	categories CategoryRepository
	links      LinkRepository
	audit      AuditLog
	clock      Clock
}

// CategoryServiceConfig holds configuration for the category service.
type CategoryServiceConfig struct {
	Lock       *sync.RWMutex
	Categories CategoryRepository
	Links      LinkRepository
	Audit      AuditLog
	Clock      Clock
}

// NewCategoryService creates a new category service.
func NewCategoryService(cfg CategoryServiceConfig) *CategoryService {
	if cfg.Lock == nil {
		cfg.Lock = &sync.RWMutex{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	return &CategoryService{
		mu:         cfg.Lock,
		categories: cfg.Categories,
		links:      cfg.Links,
		audit:      cfg.Audit,
		clock:      cfg.Clock,
	}
}

// Create persists a new category. A taken id fails ErrCategoryExists.
func (s *CategoryService) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAbsent(ctx, s.categories.Exists, category.CategoryID, ErrCategoryExists); err != nil {
		return nil, err
	}
	if err := s.categories.Put(ctx, category); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "create", "category", category.CategoryID, s.clock.Now())
	return category, nil
}

// Get returns the category with the given id.
func (s *CategoryService) Get(ctx context.Context, categoryID int) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, err := s.categories.Get(ctx, categoryID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	return category, err
}

// All returns every category. An empty store is an error, not an empty
// list.
func (s *CategoryService) All(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrCategoryListEmpty
	}
	return categories, nil
}

// Update replaces the stored category record wholesale.
func (s *CategoryService) Update(ctx context.Context, categoryID int, category *model.Category) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return nil, err
	}
	category.CategoryID = categoryID
	if err := s.categories.Put(ctx, category); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, "update", "category", categoryID, s.clock.Now())
	return category, nil
}

// Delete removes the category and every task-category row referencing
// it.
func (s *CategoryService) Delete(ctx context.Context, categoryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requirePresent(ctx, s.categories.Exists, categoryID, ErrCategoryNotFound); err != nil {
		return err
	}
	if err := s.links.ClearCategory(ctx, categoryID); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, "delete", "category", categoryID, s.clock.Now())
	return nil
}
