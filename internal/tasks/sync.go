// Package tasks owns the client-side task collection: it applies mutations
// through the API backend, keeps the in-memory collection consistent with
// the server after each one, and derives the display ordering.
package tasks

import (
	"context"
	"fmt"

	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
)

// MinFieldLen is the minimum length for a task title or description,
// checked client-side before any network call. Matches the server's
// validation so obviously-bad input never costs a round trip.
const MinFieldLen = 3

// State describes the synchronizer's loading state.
type State int

const (
	// Idle means the collection reflects the last confirmed server state.
	Idle State = iota

	// Loading means a refresh is in flight.
	Loading

	// Errored means the last refresh failed; the collection still holds
	// its last-known-good value.
	Errored
)

// Synchronizer holds the authoritative in-memory task collection for the
// session. All mutations go through it; it never exposes the collection
// for direct modification. It is not safe for concurrent mutation of the
// same id — callers serialize per-task operations.
type Synchronizer struct {
	svc   service.Service
	order []int                // ids in insertion order
	byID  map[int]service.Task // id -> task
	state State
}

// NewSynchronizer creates a synchronizer with an empty collection.
func NewSynchronizer(svc service.Service) *Synchronizer {
	return &Synchronizer{
		svc:  svc,
		byID: make(map[int]service.Task),
	}
}

// State returns the current loading state.
func (s *Synchronizer) State() State {
	return s.state
}

// Len returns the number of tasks in the collection.
func (s *Synchronizer) Len() int {
	return len(s.order)
}

// Get returns the task with the given id.
func (s *Synchronizer) Get(id int) (service.Task, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Tasks returns the collection in insertion order.
func (s *Synchronizer) Tasks() []service.Task {
	out := make([]service.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Display returns the derived display sequence. It is recomputed on every
// call and never mutates the collection.
func (s *Synchronizer) Display() []service.Task {
	return SortForDisplay(s.Tasks())
}

// Refresh replaces the entire collection with the server's task list.
// On failure the collection is left at its last-known-good value.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.state = Loading
	fetched, err := s.svc.ListTasks(ctx)
	if err != nil {
		s.state = Errored
		return err
	}
	s.order = s.order[:0]
	s.byID = make(map[int]service.Task, len(fetched))
	for _, t := range fetched {
		if _, dup := s.byID[t.ID]; dup {
			continue
		}
		s.order = append(s.order, t.ID)
		s.byID[t.ID] = t
	}
	s.state = Idle
	return nil
}

// Create validates the draft, creates the task server-side, then refreshes
// so the collection adopts the server-assigned id rather than guessing it.
// Validation failures never reach the network.
func (s *Synchronizer) Create(ctx context.Context, draft service.TaskDraft) error {
	if err := ValidateDraft(draft); err != nil {
		return err
	}
	if err := s.svc.CreateTask(ctx, draft); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Update sends the full replacement record for id and, once the server
// acknowledges, merges it into the collection without a re-fetch. On
// failure the entry is unchanged.
func (s *Synchronizer) Update(ctx context.Context, id int, draft service.TaskDraft) error {
	if err := ValidateDraft(draft); err != nil {
		return err
	}
	if _, ok := s.byID[id]; !ok {
		return &service.ValidationError{Message: fmt.Sprintf("no task with id %d", id)}
	}
	if err := s.svc.UpdateTask(ctx, id, draft); err != nil {
		return err
	}
	s.byID[id] = service.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Complete:    draft.Complete,
	}
	return nil
}

// ToggleComplete flips the task's complete flag, resending the unchanged
// title, description and priority (the wire contract has no partial form).
func (s *Synchronizer) ToggleComplete(ctx context.Context, id int) error {
	t, ok := s.byID[id]
	if !ok {
		return &service.ValidationError{Message: fmt.Sprintf("no task with id %d", id)}
	}
	draft := t.Draft()
	draft.Complete = !draft.Complete
	return s.Update(ctx, id, draft)
}

// Delete removes the task server-side, then from the collection. The entry
// is never removed speculatively: a failed delete leaves it in place so it
// cannot vanish and then reappear on the next refresh.
func (s *Synchronizer) Delete(ctx context.Context, id int) error {
	if _, ok := s.byID[id]; !ok {
		return &service.ValidationError{Message: fmt.Sprintf("no task with id %d", id)}
	}
	if err := s.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ValidateDraft checks the client-side preconditions for create and update.
func ValidateDraft(d service.TaskDraft) error {
	if len(d.Title) < MinFieldLen {
		return &service.ValidationError{Message: fmt.Sprintf("Title must be at least %d characters", MinFieldLen)}
	}
	if len(d.Description) < MinFieldLen {
		return &service.ValidationError{Message: fmt.Sprintf("Description must be at least %d characters", MinFieldLen)}
	}
	if d.Priority < 1 || d.Priority > 5 {
		return &service.ValidationError{Message: "Priority must be between 1 and 5"}
	}
	return nil
}
