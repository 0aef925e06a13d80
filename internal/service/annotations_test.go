package service

import (
	"context"
	"errors"
	"testing"

	"github.com/crewdesk/crewdesk/internal/model"
)

func TestCommentCreate_Gates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)

	_, err := core.Comments.Create(ctx, &model.Comment{CommentID: 200, TaskID: 999, UserID: 1})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	_, err = core.Comments.Create(ctx, &model.Comment{CommentID: 200, TaskID: 100, UserID: 999})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := core.Comments.Get(ctx, 200); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("comment must not be persisted after failed creates, got %v", err)
	}

	seedComment(t, core, 200, 100, 1)
	_, err = core.Comments.Create(ctx, &model.Comment{CommentID: 200, TaskID: 100, UserID: 1})
	if !errors.Is(err, ErrCommentExists) {
		t.Fatalf("expected ErrCommentExists, got %v", err)
	}
}

func TestCommentByTask_GlobalEmptyRule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)
	seedTask(t, core, 101, 10, 1, testToday)

	// Globally empty comment store: error.
	if _, err := core.Comments.ByTask(ctx, 100); !errors.Is(err, ErrCommentListEmpty) {
		t.Fatalf("expected ErrCommentListEmpty, got %v", err)
	}

	// Non-empty store, no matches for this task: empty result.
	seedComment(t, core, 200, 100, 1)
	comments, err := core.Comments.ByTask(ctx, 101)
	if err != nil {
		t.Fatalf("by task over a non-empty store must not fail: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments for task 101, got %+v", comments)
	}
}

func TestAttachmentCreate_Gates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)

	_, err := core.Attachments.Create(ctx, &model.Attachment{AttachmentID: 300, TaskID: 999})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	seedAttachment(t, core, 300, 100)
	_, err = core.Attachments.Create(ctx, &model.Attachment{AttachmentID: 300, TaskID: 100})
	if !errors.Is(err, ErrAttachmentExists) {
		t.Fatalf("expected ErrAttachmentExists, got %v", err)
	}
}

func TestAttachmentByTask_GlobalEmptyRule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)
	seedTask(t, core, 101, 10, 1, testToday)

	if _, err := core.Attachments.ByTask(ctx, 100); !errors.Is(err, ErrAttachmentListEmpty) {
		t.Fatalf("expected ErrAttachmentListEmpty, got %v", err)
	}

	seedAttachment(t, core, 300, 100)
	attachments, err := core.Attachments.ByTask(ctx, 101)
	if err != nil {
		t.Fatalf("by task over a non-empty store must not fail: %v", err)
	}
	if len(attachments) != 0 {
		t.Fatalf("expected no attachments for task 101, got %+v", attachments)
	}
}

func TestNotificationCreate_Gates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	_, err := core.Notifications.Create(ctx, &model.Notification{NotificationID: 400, UserID: 1})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	seedUser(t, core, 1, "alice")
	seedNotification(t, core, 400, 1)
	_, err = core.Notifications.Create(ctx, &model.Notification{NotificationID: 400, UserID: 1})
	if !errors.Is(err, ErrNotificationExists) {
		t.Fatalf("expected ErrNotificationExists, got %v", err)
	}
}

func TestNotificationByUser_GlobalEmptyRule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedUser(t, core, 2, "bob")

	if _, err := core.Notifications.ByUser(ctx, 1); !errors.Is(err, ErrNotificationListEmpty) {
		t.Fatalf("expected ErrNotificationListEmpty, got %v", err)
	}

	seedNotification(t, core, 400, 1)
	notifications, err := core.Notifications.ByUser(ctx, 2)
	if err != nil {
		t.Fatalf("by user over a non-empty store must not fail: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("expected no notifications for user 2, got %+v", notifications)
	}
}

func TestAnnotationUpdateDelete_AbsentID_Fails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	seedUser(t, core, 1, "alice")
	seedProject(t, core, 10, 1)
	seedTask(t, core, 100, 10, 1, testToday)

	if _, err := core.Comments.Update(ctx, 5, &model.Comment{TaskID: 100, UserID: 1}); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if err := core.Comments.Delete(ctx, 5); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
	if _, err := core.Attachments.Update(ctx, 5, &model.Attachment{TaskID: 100}); !errors.Is(err, ErrAttachmentNotFound) {
		t.Fatalf("expected ErrAttachmentNotFound, got %v", err)
	}
	if err := core.Attachments.Delete(ctx, 5); !errors.Is(err, ErrAttachmentNotFound) {
		t.Fatalf("expected ErrAttachmentNotFound, got %v", err)
	}
	if _, err := core.Notifications.Update(ctx, 5, &model.Notification{UserID: 1}); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
	if err := core.Notifications.Delete(ctx, 5); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core := newTestCore(t)

	if _, err := core.Categories.All(ctx); !errors.Is(err, ErrCategoryListEmpty) {
		t.Fatalf("expected ErrCategoryListEmpty, got %v", err)
	}

	seedCategory(t, core, 5, "infra")
	if _, err := core.Categories.Create(ctx, &model.Category{CategoryID: 5}); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	renamed, err := core.Categories.Update(ctx, 5, &model.Category{Name: "infrastructure"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if renamed.CategoryID != 5 || renamed.Name != "infrastructure" {
		t.Fatalf("unexpected update result: %+v", renamed)
	}

	if err := core.Categories.Delete(ctx, 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := core.Categories.Get(ctx, 5); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
