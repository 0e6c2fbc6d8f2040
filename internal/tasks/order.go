package tasks

import (
	"sort"

	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
)

// SortForDisplay derives the display sequence from tasks: incomplete before
// complete, then descending priority within each group, ties broken by the
// input (insertion) order. The input slice is not modified.
func SortForDisplay(tasks []service.Task) []service.Task {
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Complete != out[j].Complete {
			return !out[i].Complete
		}
		return out[i].Priority > out[j].Priority
	})
	return out
}
