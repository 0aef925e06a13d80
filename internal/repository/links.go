package repository

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// LinkRepository handles the two association tables. In the user-role
// table the left column is the user id; in the task-category table the
// left column is the task id. Duplicate rows are legal and preserved.
type LinkRepository struct {
	store storage.Store
}

// NewLinkRepository creates a new link repository.
func NewLinkRepository(store storage.Store) *LinkRepository {
	return &LinkRepository{store: store}
}

// LinkUserRole inserts one user-role row.
func (r *LinkRepository) LinkUserRole(ctx context.Context, userID, roleID int) error {
	return r.store.InsertPair(ctx, storage.TableUserRoles, userID, roleID)
}

// UnlinkUserRole removes every row matching the user-role pair.
func (r *LinkRepository) UnlinkUserRole(ctx context.Context, userID, roleID int) error {
	return r.store.DeletePairs(ctx, storage.TableUserRoles, userID, roleID)
}

// RoleIDsOf returns the role ids linked to the user, in insertion order.
func (r *LinkRepository) RoleIDsOf(ctx context.Context, userID int) ([]int, error) {
	return r.rightsOf(ctx, storage.TableUserRoles, userID)
}

// UserIDsOf returns the user ids linked to the role, in insertion order.
func (r *LinkRepository) UserIDsOf(ctx context.Context, roleID int) ([]int, error) {
	return r.leftsOf(ctx, storage.TableUserRoles, roleID)
}

// UserRolePairs returns every user-role row, in insertion order.
func (r *LinkRepository) UserRolePairs(ctx context.Context) ([]model.Pair, error) {
	return r.allPairs(ctx, storage.TableUserRoles)
}

// LinkTaskCategory inserts one task-category row.
func (r *LinkRepository) LinkTaskCategory(ctx context.Context, taskID, categoryID int) error {
	return r.store.InsertPair(ctx, storage.TableTaskCategories, taskID, categoryID)
}

// UnlinkTaskCategory removes every row matching the task-category pair.
func (r *LinkRepository) UnlinkTaskCategory(ctx context.Context, taskID, categoryID int) error {
	return r.store.DeletePairs(ctx, storage.TableTaskCategories, taskID, categoryID)
}

// CategoryIDsOf returns the category ids linked to the task, in insertion order.
func (r *LinkRepository) CategoryIDsOf(ctx context.Context, taskID int) ([]int, error) {
	return r.rightsOf(ctx, storage.TableTaskCategories, taskID)
}

// TaskIDsOf returns the task ids linked to the category, in insertion order.
func (r *LinkRepository) TaskIDsOf(ctx context.Context, categoryID int) ([]int, error) {
	return r.leftsOf(ctx, storage.TableTaskCategories, categoryID)
}

// TaskCategoryPairs returns every task-category row, in insertion order.
func (r *LinkRepository) TaskCategoryPairs(ctx context.Context) ([]model.Pair, error) {
	return r.allPairs(ctx, storage.TableTaskCategories)
}

// ClearUser removes every user-role row for the user.
func (r *LinkRepository) ClearUser(ctx context.Context, userID int) error {
	return r.store.DeleteLeft(ctx, storage.TableUserRoles, userID)
}

// ClearRole removes every user-role row for the role.
func (r *LinkRepository) ClearRole(ctx context.Context, roleID int) error {
	return r.store.DeleteRight(ctx, storage.TableUserRoles, roleID)
}

// ClearTask removes every task-category row for the task.
func (r *LinkRepository) ClearTask(ctx context.Context, taskID int) error {
	return r.store.DeleteLeft(ctx, storage.TableTaskCategories, taskID)
}

// ClearCategory removes every task-category row for the category.
func (r *LinkRepository) ClearCategory(ctx context.Context, categoryID int) error {
	return r.store.DeleteRight(ctx, storage.TableTaskCategories, categoryID)
}

func (r *LinkRepository) rightsOf(ctx context.Context, table storage.Table, left int) ([]int, error) {
	pairs, err := r.store.ScanPairs(ctx, table)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(pairs))
	for _, p := range pairs {
		if p.Left == left {
			out = append(out, p.Right)
		}
	}
	return out, nil
}

func (r *LinkRepository) leftsOf(ctx context.Context, table storage.Table, right int) ([]int, error) {
	pairs, err := r.store.ScanPairs(ctx, table)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(pairs))
	for _, p := range pairs {
		if p.Right == right {
			out = append(out, p.Left)
		}
	}
	return out, nil
}

func (r *LinkRepository) allPairs(ctx context.Context, table storage.Table) ([]model.Pair, error) {
	pairs, err := r.store.ScanPairs(ctx, table)
	if err != nil {
		return nil, err
	}
	out := make([]model.Pair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, model.Pair{LeftID: p.Left, RightID: p.Right})
	}
	return out, nil
}
