// Package main is the entry point for the taskman CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/maiitrapatel-code/Task-Management-System/internal/backend/taskapi"
	"github.com/maiitrapatel-code/Task-Management-System/internal/cli"
	"github.com/maiitrapatel-code/Task-Management-System/internal/commands"
	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
	"github.com/maiitrapatel-code/Task-Management-System/internal/service"
	"github.com/maiitrapatel-code/Task-Management-System/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return taskapi.New(cfg, sess), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
