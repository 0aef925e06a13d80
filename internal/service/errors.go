package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in callers predictable. Callers discriminate
// with errors.Is.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid password")
)

// ===== User Errors =====
var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user doesn't exist")
	ErrUserListEmpty = errors.New("user list is empty")
)

// ===== Role Errors =====
var (
	ErrRoleExists    = errors.New("role already exists")
	ErrRoleNotFound  = errors.New("role doesn't exist")
	ErrRoleListEmpty = errors.New("role list is empty")
)

// ===== Project Errors =====
var (
	ErrProjectExists    = errors.New("project already exists")
	ErrProjectNotFound  = errors.New("project doesn't exist")
	ErrProjectListEmpty = errors.New("project list is empty")
)

// ===== Task Errors =====
var (
	ErrTaskExists    = errors.New("task already exists")
	ErrTaskNotFound  = errors.New("task doesn't exist")
	ErrTaskListEmpty = errors.New("task list is empty")
)

// ===== Category Errors =====
var (
	ErrCategoryExists    = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category doesn't exist")
	ErrCategoryListEmpty = errors.New("category list is empty")
)

// ===== Comment Errors =====
var (
	ErrCommentExists    = errors.New("comment already exists")
	ErrCommentNotFound  = errors.New("comment doesn't exist")
	ErrCommentListEmpty = errors.New("comment list is empty")
)

// ===== Attachment Errors =====
var (
	ErrAttachmentExists    = errors.New("attachment already exists")
	ErrAttachmentNotFound  = errors.New("attachment doesn't exist")
	ErrAttachmentListEmpty = errors.New("attachment list is empty")
)

// ===== Notification Errors =====
var (
	ErrNotificationExists    = errors.New("notification already exists")
	ErrNotificationNotFound  = errors.New("notification doesn't exist")
	ErrNotificationListEmpty = errors.New("notification list is empty")
)
