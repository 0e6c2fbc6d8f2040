// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
)

// Token is the access token the fake hands out on login.
const Token = "fake-access-token"

// FakeService is an in-memory implementation of service.Service for testing.
// Calls counts invocations per method so tests can assert that validation
// failures never reach the network layer.
type FakeService struct {
	mu     sync.Mutex
	nextID int
	tasks  []service.Task
	users  map[string]string // username -> password

	// Error injection for testing
	SignupErr     error
	LoginErr      error
	LogoutErr     error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	Calls map[string]int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID: 1,
		users:  make(map[string]string),
		Calls:  make(map[string]int),
	}
}

// AddUser registers an account the fake will accept credentials for.
func (f *FakeService) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// AddTask seeds a task and returns its assigned id.
func (f *FakeService) AddTask(title, description string, priority int, complete bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		Complete:    complete,
	})
	return id
}

// TaskByID returns a seeded task by id, for assertions.
func (f *FakeService) TaskByID(id int) (service.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

func (f *FakeService) record(method string) {
	f.Calls[method]++
}

// CallCount returns how many times the named method was invoked.
func (f *FakeService) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

// Signup implements service.Service.
func (f *FakeService) Signup(ctx context.Context, username, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Signup")
	if f.SignupErr != nil {
		return "", f.SignupErr
	}
	if _, exists := f.users[username]; exists {
		return "", &service.RequestError{Status: http.StatusBadRequest, Detail: "Email or username already registered"}
	}
	f.users[username] = password
	return "User created successfully", nil
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Login")
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	if pw, ok := f.users[username]; !ok || pw != password {
		return "", &service.RequestError{Status: http.StatusUnauthorized, Detail: "Invalid username or password."}
	}
	return Token, nil
}

// Logout implements service.Service.
func (f *FakeService) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Logout")
	return f.LogoutErr
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, draft service.TaskDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Complete:    draft.Complete,
	})
	return nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, draft service.TaskDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = service.Task{
				ID:          id,
				Title:       draft.Title,
				Description: draft.Description,
				Priority:    draft.Priority,
				Complete:    draft.Complete,
			}
			return nil
		}
	}
	return &service.RequestError{Status: http.StatusNotFound, Detail: "Task not found."}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.RequestError{Status: http.StatusNotFound, Detail: "Task not found."}
}
