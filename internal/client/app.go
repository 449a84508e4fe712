// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-rot13-api/internal/adapter"
	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
)

// Usage lists the supported commands.
const Usage = `usage: rot13-client [flags] <command> [args]

commands:
  rot13 <TEXT>   encode TEXT (uppercase letters and spaces)
  whoami         show the authenticated user
  health         check the server status
  info           show the service description`

type command struct {
	needsAuth bool
	run       func(ctx context.Context, args []string) error
}

type App struct {
	adapter  adapter.ServerAdapter
	username string
	password string

	commands map[string]command

	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the client around serverAdapter. Results are written to out.
func NewApp(serverAdapter adapter.ServerAdapter, cfg config.Adapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}

	a := &App{
		adapter:  serverAdapter,
		username: cfg.Username,
		password: cfg.Password,
		out:      out,
		logger:   logger,
	}
	a.commands = map[string]command{
		"rot13":  {needsAuth: true, run: a.rot13},
		"whoami": {needsAuth: true, run: a.whoami},
		"health": {run: a.health},
		"info":   {run: a.info},
	}

	return a, nil
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name := strings.ToLower(args[0])
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if cmd.needsAuth {
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, args[1:])
}

// Commands returns the sorted command names.
func (a *App) Commands() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *App) login(ctx context.Context) error {
	if a.adapter.Token() != "" {
		return nil
	}
	if a.username == "" || a.password == "" {
		return ErrMissingCredentials
	}

	if _, err := a.adapter.Login(ctx, a.username, a.password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return nil
}

func (a *App) rot13(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: text to encode", ErrMissingArgument)
	}

	resp, err := a.adapter.ROT13(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("rot13: %w", err)
	}

	_, err = fmt.Fprintln(a.out, resp.Result)
	return err
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	resp, err := a.adapter.UserInfo(ctx)
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s (id %d)\n", resp.Username, resp.UserID)
	return err
}

func (a *App) health(ctx context.Context, _ []string) error {
	resp, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	_, err = fmt.Fprintln(a.out, resp.Status)
	return err
}

func (a *App) info(ctx context.Context, _ []string) error {
	resp, err := a.adapter.Info(ctx)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
