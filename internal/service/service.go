// Package service defines the backend-agnostic interface for task API operations.
package service

import "context"

// Service defines the interface for the task API backend.
// All network calls go through this interface; commands and the synchronizer
// never build HTTP requests directly.
type Service interface {
	// Signup creates an account and returns the server's confirmation message.
	// Not retried; server error detail is surfaced verbatim.
	Signup(ctx context.Context, username, email, password string) (string, error)

	// Login exchanges credentials for an access token.
	// On failure the server's error detail is surfaced verbatim.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout notifies the server. Best-effort: callers clear the local
	// session regardless of this call's outcome.
	Logout(ctx context.Context) error

	// ListTasks returns all of the user's tasks.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task. The server assigns the id and returns an
	// empty acknowledgement; callers re-fetch to observe the new task.
	CreateTask(ctx context.Context, draft TaskDraft) error

	// UpdateTask replaces the task's title, description, priority and
	// complete flag atomically.
	UpdateTask(ctx context.Context, id int, draft TaskDraft) error

	// DeleteTask deletes a task by id.
	DeleteTask(ctx context.Context, id int) error
}
