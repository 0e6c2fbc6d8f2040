package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/maiitrapatel-code/Task-Management-System/internal/cli"
	"github.com/maiitrapatel-code/Task-Management-System/internal/commands"
	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/exitcode"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
	"github.com/maiitrapatel-code/Task-Management-System/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return svc, nil
	}
}

func run(t *testing.T, svc *testutil.FakeService, args []string) (stdout, stderr string, code int) {
	t.Helper()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, strings.NewReader(""), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeService(), []string{"unknowncmd"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeService(), []string{"--quiet"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, testutil.NewFakeService(), []string{"help"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, testutil.NewFakeService(), []string{"version"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskman 0.1.0\n" {
		t.Errorf("expected 'taskman 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, testutil.NewFakeService(), []string{"help", "--unknown"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_AuthRequiredCommandWithoutSession(t *testing.T) {
	dir := t.TempDir()
	_, stderr, code := run(t, testutil.NewFakeService(), []string{"list", "--config", dir})

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: taskman login)\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_ListWithRestoredSession(t *testing.T) {
	dir := t.TempDir()
	sess := session.New(dir + "/" + config.SessionFile)
	if err := sess.Login(testutil.Token, "alice"); err != nil {
		t.Fatal(err)
	}

	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "corner shop", 3, false)

	stdout, stderr, code := run(t, svc, []string{"list", "--config", dir})
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "Buy milk") {
		t.Errorf("expected task listing, got %q", stdout)
	}
}
