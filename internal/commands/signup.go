package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
)

const (
	// MinUsernameLen matches the server's username length floor.
	MinUsernameLen = 3

	// MinPasswordLen matches the server's password length floor.
	MinPasswordLen = 6
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command.
type SignupCmd struct {
	email    string
	password string
}

// SetEmail sets the email (for testing).
func (c *SignupCmd) SetEmail(email string) { c.email = email }

// SetPassword sets the password (for testing).
func (c *SignupCmd) SetPassword(pw string) { c.password = pw }

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return nil }
func (c *SignupCmd) Synopsis() string  { return "Create an account" }
func (c *SignupCmd) Usage() string {
	return "taskman signup --email <email> [--password <pw>] <username>"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: username required")
		return exitcode.UserError
	}
	username := args[0]
	if len(username) < MinUsernameLen {
		fmt.Fprintf(errOut, "error: Username must be at least %d characters\n", MinUsernameLen)
		return exitcode.UserError
	}
	if !strings.Contains(c.email, "@") {
		fmt.Fprintln(errOut, "error: valid email required (--email)")
		return exitcode.UserError
	}

	// All checks below happen before any network call.
	password := c.password
	if password == "" {
		reader := bufio.NewReader(in)
		var err error
		password, err = promptLine(reader, errOut, "Password")
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		confirm, err := promptLine(reader, errOut, "Confirm password")
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		if password != confirm {
			fmt.Fprintln(errOut, "error: Passwords do not match")
			return exitcode.UserError
		}
	}
	if len(password) < MinPasswordLen {
		fmt.Fprintf(errOut, "error: Password must be at least %d characters\n", MinPasswordLen)
		return exitcode.UserError
	}

	msg, err := svc.Signup(ctx, username, c.email, password)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, msg)
	}
	return exitcode.Success
}
