package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd implements the whoami command.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the logged-in user" }
func (c *WhoamiCmd) Usage() string     { return "taskman whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprintln(out, sess.Username())
	if claims, ok := sess.Claims(); ok && !claims.ExpiresAt.IsZero() && !cfg.Quiet {
		if time.Now().After(claims.ExpiresAt) {
			fmt.Fprintln(out, "token expired (run: taskman login)")
		} else {
			fmt.Fprintf(out, "token expires %s\n", claims.ExpiresAt.Local().Format(time.RFC3339))
		}
	}
	return exitcode.Success
}
