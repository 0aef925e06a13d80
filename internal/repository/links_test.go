package repository

import (
	"context"
	"testing"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

func TestLinkRepository_TablesDoNotBleed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	links := NewLinkRepository(storage.NewMemory())

	if err := links.LinkUserRole(ctx, 1, 9); err != nil {
		t.Fatalf("link user role: %v", err)
	}
	if err := links.LinkTaskCategory(ctx, 1, 9); err != nil {
		t.Fatalf("link task category: %v", err)
	}

	// Clearing user 1 must not touch the task-category row for task 1.
	if err := links.ClearUser(ctx, 1); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	roles, err := links.RoleIDsOf(ctx, 1)
	if err != nil {
		t.Fatalf("role ids: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected no roles after clear, got %v", roles)
	}
	categories, err := links.CategoryIDsOf(ctx, 1)
	if err != nil {
		t.Fatalf("category ids: %v", err)
	}
	if len(categories) != 1 || categories[0] != 9 {
		t.Fatalf("task-category row must survive, got %v", categories)
	}
}

func TestLinkRepository_DuplicateRowsPreserved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	links := NewLinkRepository(storage.NewMemory())

	for i := 0; i < 3; i++ {
		if err := links.LinkUserRole(ctx, 1, 9); err != nil {
			t.Fatalf("link: %v", err)
		}
	}
	pairs, err := links.UserRolePairs(ctx)
	if err != nil {
		t.Fatalf("pairs: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 rows, got %+v", pairs)
	}
	for _, p := range pairs {
		if p != (model.Pair{LeftID: 1, RightID: 9}) {
			t.Fatalf("unexpected pair %+v", p)
		}
	}

	if err := links.UnlinkUserRole(ctx, 1, 9); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	pairs, err = links.UserRolePairs(ctx)
	if err != nil {
		t.Fatalf("pairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("unlink must drop every duplicate, got %+v", pairs)
	}
}

func TestUserRepository_ByEmailSuffix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := NewUserRepository(storage.NewMemory())

	for id, email := range map[int]string{
		1: "alice@example.com",
		2: "bob@example.org",
		3: "carol@example.com",
	} {
		err := users.Put(ctx, &model.User{UserID: id, UserName: email, Email: email})
		if err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	matched, err := users.ByEmailSuffix(ctx, "@example.com")
	if err != nil {
		t.Fatalf("by email suffix: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %+v", matched)
	}
	// scanWhere keeps the ascending id order of the underlying scan.
	if matched[0].UserID != 1 || matched[1].UserID != 3 {
		t.Fatalf("unexpected order: %+v", matched)
	}
}
