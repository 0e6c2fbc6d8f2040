package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/output"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
	"github.com/maiitrapatel-code/Task-Management-System/internal/tasks"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Unset flags keep the task's current
// values; the full replacement record is always sent on the wire.
type EditCmd struct {
	title       string
	description string
	priority    int
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(t string) { c.title = t }

// SetDescription sets the new description (for testing).
func (c *EditCmd) SetDescription(d string) { c.description = d }

// SetPriority sets the new priority (for testing).
func (c *EditCmd) SetPriority(p int) { c.priority = p }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskman edit [--title <t>] [--desc <d>] [--priority <1-5>] <num>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.IntVar(&c.priority, "priority", 0, "")
	fs.IntVar(&c.priority, "p", 0, "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task number required")
		return exitcode.UserError
	}
	if c.title == "" && c.description == "" && c.priority == 0 {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	sync := tasks.NewSynchronizer(svc)
	task, err := resolveTaskNumber(ctx, sync, args[0])
	if err != nil {
		return reportError(errOut, err)
	}

	draft := task.Draft()
	if c.title != "" {
		draft.Title = c.title
	}
	if c.description != "" {
		draft.Description = c.description
	}
	if c.priority != 0 {
		draft.Priority = c.priority
	}

	if err := sync.Update(ctx, task.ID, draft); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		updated, _ := sync.Get(task.ID)
		output.FormatTaskDetail(out, updated)
	}
	return exitcode.Success
}
