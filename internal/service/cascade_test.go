package service

import (
	"context"
	"errors"
	"testing"

	"github.com/crewdesk/crewdesk/internal/storage"
)

var errInjected = errors.New("injected storage failure")

// faultStore fails Remove for one (kind, id) pair and passes everything
// else through. Used to prove a failed cascade never removes the root.
type faultStore struct {
	storage.Store
	failKind storage.Kind
	failID   int
}

func (s *faultStore) Remove(ctx context.Context, kind storage.Kind, id int) error {
	if kind == s.failKind && id == s.failID {
		return errInjected
	}
	return s.Store.Remove(ctx, kind, id)
}

func TestUserDelete_CascadesEverythingOwned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedUser(t, core, 2, "bob")
	seedRole(t, core, 9, "ADMIN")
	if err := core.Associations.LinkUserRole(ctx, 1, 9); err != nil {
		t.Fatalf("link: %v", err)
	}

	seedProject(t, core, 10, 1) // alice's project
	seedProject(t, core, 11, 2) // bob's project
	seedTask(t, core, 100, 10, 1, testToday)
	seedTask(t, core, 101, 11, 1, testToday) // alice's task in bob's project
	seedTask(t, core, 102, 11, 2, testToday) // bob's task
	seedComment(t, core, 200, 102, 1)        // alice's comment on bob's task
	seedNotification(t, core, 400, 1)
	seedNotification(t, core, 401, 2)

	if err := core.Identity.Delete(ctx, 1); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := core.Identity.Get(ctx, 1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user should be gone, got %v", err)
	}
	if _, err := core.Projects.Get(ctx, 10); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("owned project should be gone, got %v", err)
	}
	if _, err := core.Tasks.Get(ctx, 100); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("task in owned project should be gone, got %v", err)
	}
	if _, err := core.Tasks.Get(ctx, 101); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("owned task in a foreign project should be gone, got %v", err)
	}
	if _, err := core.Comments.Get(ctx, 200); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("authored comment should be gone, got %v", err)
	}
	if _, err := core.Notifications.Get(ctx, 400); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("notification should be gone, got %v", err)
	}
	if err := core.Associations.UnlinkUserRole(ctx, 9, 1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user-role rows should be unreachable, got %v", err)
	}

	// Bob's world is untouched.
	if _, err := core.Identity.Get(ctx, 2); err != nil {
		t.Fatalf("other user must survive: %v", err)
	}
	if _, err := core.Projects.Get(ctx, 11); err != nil {
		t.Fatalf("other project must survive: %v", err)
	}
	if _, err := core.Tasks.Get(ctx, 102); err != nil {
		t.Fatalf("other task must survive: %v", err)
	}
	if _, err := core.Notifications.Get(ctx, 401); err != nil {
		t.Fatalf("other notification must survive: %v", err)
	}
}

func TestProjectDelete_CascadeFailure_KeepsProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &faultStore{
		Store:    storage.NewMemory(),
		failKind: storage.KindComment,
		failID:   200,
	}
	core := NewCore(CoreConfig{Store: store, Clock: fixedClock{t: testToday}})

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)
	seedComment(t, core, 200, 100, 1)

	if err := core.Projects.Delete(ctx, 10); !errors.Is(err, errInjected) {
		t.Fatalf("expected the injected failure to surface, got %v", err)
	}

	// The failed cascade must not have removed the project or its task.
	if _, err := core.Projects.Get(ctx, 10); err != nil {
		t.Fatalf("project must survive a failed cascade: %v", err)
	}
	if _, err := core.Tasks.Get(ctx, 100); err != nil {
		t.Fatalf("task must survive a failed cascade: %v", err)
	}
}

func TestUserDelete_CascadeFailure_KeepsUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &faultStore{
		Store:    storage.NewMemory(),
		failKind: storage.KindNotification,
		failID:   400,
	}
	core := NewCore(CoreConfig{Store: store, Clock: fixedClock{t: testToday}})

	seedUser(t, core, 1, "alice")
	seedNotification(t, core, 400, 1)

	if err := core.Identity.Delete(ctx, 1); !errors.Is(err, errInjected) {
		t.Fatalf("expected the injected failure to surface, got %v", err)
	}
	if _, err := core.Identity.Get(ctx, 1); err != nil {
		t.Fatalf("user must survive a failed cascade: %v", err)
	}
}
