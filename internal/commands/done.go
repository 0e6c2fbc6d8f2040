package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
	"github.com/maiitrapatel-code/Task-Management-System/internal/tasks"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: it toggles the task's complete flag,
// so running it on a completed task reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle task completion" }
func (c *DoneCmd) Usage() string     { return "taskman done <num>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task number required")
		return exitcode.UserError
	}

	sync := tasks.NewSynchronizer(svc)
	task, err := resolveTaskNumber(ctx, sync, args[0])
	if err != nil {
		return reportError(errOut, err)
	}

	if err := sync.ToggleComplete(ctx, task.ID); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		if updated, ok := sync.Get(task.ID); ok && updated.Complete {
			fmt.Fprintln(out, "completed")
		} else {
			fmt.Fprintln(out, "reopened")
		}
	}
	return exitcode.Success
}
