// Package service defines the backend-agnostic interface for task API operations.
package service

// Task represents a single task as the server returns it.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"` // 1 (very low) .. 5 (critical)
	Complete    bool   `json:"complete"`
}

// TaskDraft is the client-supplied record for create and update calls.
// The wire contract has no partial-update form; every field is sent.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

// Draft returns the task's fields as a draft, for full-record updates.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
	}
}
