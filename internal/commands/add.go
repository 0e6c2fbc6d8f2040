package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
	"github.com/maiitrapatel-code/Task-Management-System/internal/tasks"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	priority    int
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(d string) { c.description = d }

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(p int) { c.priority = p }

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskman add --desc <text> [--priority <1-5>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.IntVar(&c.priority, "priority", 3, "")
	fs.IntVar(&c.priority, "p", 3, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	sync := tasks.NewSynchronizer(svc)
	draft := service.TaskDraft{
		Title:       title,
		Description: c.description,
		Priority:    c.priority,
	}
	if err := sync.Create(ctx, draft); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
