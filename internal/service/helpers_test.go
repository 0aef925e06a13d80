package service

import (
	"context"
	"testing"
	"time"

	"github.com/crewdesk/crewdesk/internal/model"
	"github.com/crewdesk/crewdesk/internal/storage"
)

// ============================================================================
// Test Fixtures
// ============================================================================

// fixedClock pins "now" so the date-derived queries are deterministic.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// testToday is the pinned date used across the date-query tests.
var testToday = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func newTestCore(t *testing.T) *Core {
	t.Helper()
	return NewCore(CoreConfig{
		Store: storage.NewMemory(),
		Clock: fixedClock{t: testToday},
	})
}

func newAuditedCore(t *testing.T) (*Core, *MemoryAuditLog) {
	t.Helper()
	audit := NewMemoryAuditLog()
	core := NewCore(CoreConfig{
		Store: storage.NewMemory(),
		Audit: audit,
		Clock: fixedClock{t: testToday},
	})
	return core, audit
}

func seedUser(t *testing.T, core *Core, id int, userName string) *model.User {
	t.Helper()
	user, err := core.Identity.Create(context.Background(), &model.User{
		UserID:   id,
		UserName: userName,
		Password: "Secr3t@",
		Email:    userName + "@example.com",
		FullName: "Test " + userName,
	})
	if err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
	return user
}

func seedRole(t *testing.T, core *Core, id int, name string) *model.Role {
	t.Helper()
	role, err := core.Roles.Create(context.Background(), &model.Role{RoleID: id, RoleName: name})
	if err != nil {
		t.Fatalf("seed role %d: %v", id, err)
	}
	return role
}

func seedProject(t *testing.T, core *Core, id, ownerID int) *model.Project {
	t.Helper()
	project, err := core.Projects.Create(context.Background(), &model.Project{
		ProjectID:   id,
		Name:        "project",
		StartDate:   testToday.AddDate(0, 0, -10),
		EndDate:     testToday.AddDate(0, 0, 10),
		OwnerUserID: ownerID,
	})
	if err != nil {
		t.Fatalf("seed project %d: %v", id, err)
	}
	return project
}

func seedTask(t *testing.T, core *Core, id, projectID, ownerID int, due time.Time) *model.Task {
	t.Helper()
	task, err := core.Tasks.Create(context.Background(), &model.Task{
		TaskID:         id,
		Name:           "task",
		DueDate:        due,
		Priority:       model.PriorityMedium,
		Status:         model.StatusPending,
		OwnerUserID:    ownerID,
		OwnerProjectID: projectID,
	})
	if err != nil {
		t.Fatalf("seed task %d: %v", id, err)
	}
	return task
}

func seedCategory(t *testing.T, core *Core, id int, name string) *model.Category {
	t.Helper()
	category, err := core.Categories.Create(context.Background(), &model.Category{CategoryID: id, Name: name})
	if err != nil {
		t.Fatalf("seed category %d: %v", id, err)
	}
	return category
}

func seedComment(t *testing.T, core *Core, id, taskID, userID int) *model.Comment {
	t.Helper()
	comment, err := core.Comments.Create(context.Background(), &model.Comment{
		CommentID: id,
		Text:      "comment",
		CreatedAt: testToday,
		TaskID:    taskID,
		UserID:    userID,
	})
	if err != nil {
		t.Fatalf("seed comment %d: %v", id, err)
	}
	return comment
}

func seedAttachment(t *testing.T, core *Core, id, taskID int) *model.Attachment {
	t.Helper()
	attachment, err := core.Attachments.Create(context.Background(), &model.Attachment{
		AttachmentID: id,
		FileName:     "file.txt",
		FilePath:     "/tmp/file.txt",
		TaskID:       taskID,
	})
	if err != nil {
		t.Fatalf("seed attachment %d: %v", id, err)
	}
	return attachment
}

func seedNotification(t *testing.T, core *Core, id, userID int) *model.Notification {
	t.Helper()
	notification, err := core.Notifications.Create(context.Background(), &model.Notification{
		NotificationID: id,
		Text:           "ping",
		CreatedAt:      testToday,
		UserID:         userID,
	})
	if err != nil {
		t.Fatalf("seed notification %d: %v", id, err)
	}
	return notification
}
