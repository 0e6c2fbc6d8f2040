package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/tasks"
)

// promptLine writes a label and reads one line of input.
func promptLine(in *bufio.Reader, errOut io.Writer, label string) (string, error) {
	fmt.Fprintf(errOut, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// reportError prints err and maps it to an exit code: validation failures
// are user errors, an auth rejection means the session was already cleared
// by the gateway and the user has to log in again, anything else is a
// backend failure.
func reportError(errOut io.Writer, err error) int {
	if service.IsValidation(err) {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if service.IsAuthRejected(err) {
		fmt.Fprintln(errOut, "error: session rejected (run: taskman login)")
		return exitcode.AuthError
	}
	var re *service.RequestError
	if errors.As(err, &re) {
		fmt.Fprintf(errOut, "error: %s\n", re.Detail)
		return exitcode.BackendError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.BackendError
}

// resolveTaskNumber refreshes the synchronizer and resolves a 1-based
// display-sequence number to the task it currently denotes.
func resolveTaskNumber(ctx context.Context, sync *tasks.Synchronizer, arg string) (service.Task, error) {
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 {
		return service.Task{}, &service.ValidationError{Message: fmt.Sprintf("invalid task number: %s", arg)}
	}
	if err := sync.Refresh(ctx); err != nil {
		return service.Task{}, err
	}
	seq := sync.Display()
	if num > len(seq) {
		return service.Task{}, &service.ValidationError{Message: fmt.Sprintf("task number out of range: %d", num)}
	}
	return seq[num-1], nil
}
