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
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskman help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskman                                            List tasks
  taskman list [common flags] [--open]
  taskman add [common flags] --desc <text> [--priority <1-5>] <title...>
  taskman edit [common flags] [--title <t>] [--desc <d>] [--priority <1-5>] <num>
  taskman done [common flags] <num>
  taskman rm [common flags] <num>
  taskman signup [common flags] --email <email> [--password <pw>] <username>
  taskman login [common flags] [--password <pw>] [username]
  taskman logout [common flags]
  taskman whoami [common flags]
  taskman help
  taskman version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
