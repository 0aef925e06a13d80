package service

import "context"

// cascadeRepos bundles every repository a cascading delete can touch.
// The helpers below assume the caller already holds the write lock and
// has verified the root entity exists. Children are removed first and
// the root last; the first error aborts the whole cascade, so a failed
// cascade never removes the root.
type cascadeRepos struct {
	users         UserRepository
	projects      ProjectRepository
	tasks         TaskRepository
	comments      CommentRepository
	attachments   AttachmentRepository
	notifications NotificationRepository
	links         LinkRepository
}

// deleteTaskTree removes a task, its comments and attachments, and its
// task-category rows.
func deleteTaskTree(ctx context.Context, r cascadeRepos, taskID int) error {
	comments, err := r.comments.ByTask(ctx, taskID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := r.comments.Delete(ctx, c.CommentID); err != nil {
			return err
		}
	}
	attachments, err := r.attachments.ByTask(ctx, taskID)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if err := r.attachments.Delete(ctx, a.AttachmentID); err != nil {
			return err
		}
	}
	if err := r.links.ClearTask(ctx, taskID); err != nil {
		return err
	}
	return r.tasks.Delete(ctx, taskID)
}

// deleteProjectTree removes a project and every task it owns, each task
// taking its own subtree with it.
func deleteProjectTree(ctx context.Context, r cascadeRepos, projectID int) error {
	tasks, err := r.tasks.ByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if err := deleteTaskTree(ctx, r, t.TaskID); err != nil {
			return err
		}
	}
	return r.projects.Delete(ctx, projectID)
}

// deleteUserTree removes a user and everything the user owns: their
// projects (with those projects' tasks), any tasks they own in other
// users' projects, the comments they authored, their notifications,
// and their user-role rows.
func deleteUserTree(ctx context.Context, r cascadeRepos, userID int) error {
	projects, err := r.projects.ByOwner(ctx, userID)
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := deleteProjectTree(ctx, r, p.ProjectID); err != nil {
			return err
		}
	}
	tasks, err := r.tasks.ByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if err := deleteTaskTree(ctx, r, t.TaskID); err != nil {
			return err
		}
	}
	comments, err := r.comments.ByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := r.comments.Delete(ctx, c.CommentID); err != nil {
			return err
		}
	}
	notifications, err := r.notifications.ByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if err := r.notifications.Delete(ctx, n.NotificationID); err != nil {
			return err
		}
	}
	if err := r.links.ClearUser(ctx, userID); err != nil {
		return err
	}
	return r.users.Delete(ctx, userID)
}
