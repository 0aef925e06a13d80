package model

// Attachment is a file reference attached to a task. The core stores only
// the name and path; file contents live outside the system.
type Attachment struct {
	AttachmentID int    `json:"attachment_id"`
	FileName     string `json:"file_name"`
	FilePath     string `json:"file_path"`
	TaskID       int    `json:"task_id"`
}
