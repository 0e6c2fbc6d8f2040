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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskman` (no args) and `taskman list`.
type ListCmd struct {
	openOnly bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskman list [--open]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.openOnly, "open", false, "")
	fs.BoolVar(&c.openOnly, "o", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	sync := tasks.NewSynchronizer(svc)
	if err := sync.Refresh(ctx); err != nil {
		return reportError(errOut, err)
	}

	seq := sync.Display()
	if c.openOnly {
		open := seq[:0:0]
		for _, t := range seq {
			if !t.Complete {
				open = append(open, t)
			}
		}
		seq = open
	}

	if len(seq) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
		return exitcode.Success
	}

	for i, t := range seq {
		output.FormatTask(out, i+1, t)
	}
	return exitcode.Success
}
