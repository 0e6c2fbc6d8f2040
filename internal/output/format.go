// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
)

// PriorityLabel maps a task priority to its display label.
// Values outside 1..5 map to "Unknown".
func PriorityLabel(priority int) string {
	switch priority {
	case 1:
		return "Very Low"
	case 2:
		return "Low"
	case 3:
		return "Medium"
	case 4:
		return "High"
	case 5:
		return "Critical"
	default:
		return "Unknown"
	}
}

// FormatTask formats one task line of the display sequence.
// Format: "{N:>4}  {MARK} {TITLE} [{PRIORITY}]" where MARK is "x" for
// completed tasks and "." for open ones.
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := "."
	if task.Complete {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  %s %s [%s]\n", num, mark, normalizeTitle(task.Title), PriorityLabel(task.Priority))
}

// FormatTaskDetail prints a task with its description, for edit previews.
func FormatTaskDetail(w io.Writer, task service.Task) {
	status := "open"
	if task.Complete {
		status = "completed"
	}
	fmt.Fprintf(w, "%s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "  priority: %s\n", PriorityLabel(task.Priority))
	fmt.Fprintf(w, "  status:   %s\n", status)
	if strings.TrimSpace(task.Description) != "" {
		fmt.Fprintf(w, "  %s\n", normalizeTitle(task.Description))
	}
}

// normalizeTitle normalizes text for single-line display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
