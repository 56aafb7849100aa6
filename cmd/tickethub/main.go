// Copyright 2026 The TicketHub Authors
// SPDX-License-Identifier: Apache-2.0

// tickethub is the interactive terminal client for the TicketHub
// booking backend. It browses the event listing, signs in or
// registers an account, books seats, and manages existing bookings.
//
// The backend URL resolves from --api-url, then TICKETHUB_API_URL,
// then the config file (see lib/config). A .env file in the working
// directory is loaded first so local development setups can keep the
// URL and friends out of the shell profile.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tickethub/tickethub/lib/api"
	"github.com/tickethub/tickethub/lib/bookingui"
	"github.com/tickethub/tickethub/lib/config"
	"github.com/tickethub/tickethub/lib/session"
	"github.com/tickethub/tickethub/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var apiURL string
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("tickethub", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api-url", "", "base URL of the booking backend")
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: "+config.DefaultPath()+")")
	flagSet.StringVar(&logOutput, "log-file", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other flags.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("tickethub %s\n", version.Full())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	// Optional: local development environment. A missing .env is the
	// normal case.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configuration, err := config.Load(configPath)
	if err != nil {
		return err
	}
	configuration.Resolve(apiURL)
	if err := configuration.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tickethub is an interactive terminal UI; stdout is not a terminal")
	}

	// Background logging routes into the TUI status bar; writing to
	// stderr would corrupt the alt screen. An optional JSON file
	// captures everything at DEBUG for post-mortem debugging.
	tuiHandler := bookingui.NewTUILogHandler(slog.LevelWarn)

	var logger *slog.Logger
	logFile := configuration.LogFile
	if logOutput != "" {
		logFile = logOutput
	}
	if logFile != "" {
		fileHandler, closeFile, fileErr := openFileLogHandler(logFile)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logFile, fileErr)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	client, err := api.NewClient(api.ClientConfig{
		BaseURL: configuration.APIURL,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	store := session.NewFileStore(configuration.SessionFile)
	restored, err := store.Load()
	if err != nil {
		// A corrupt session file should not block the app; start
		// anonymous and let the next login overwrite it.
		fmt.Fprintf(os.Stderr, "warning: ignoring saved session: %v\n", err)
		restored = nil
	}
	if restored != nil {
		client.SetToken(restored.Token)
	}

	model := bookingui.NewModel(client, store, restored)
	if configuration.DefaultEventType != "" {
		model.SetDefaultEventType(configuration.DefaultEventType)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Wire the TUI handler to the program so log records flow into
	// bubbletea's message loop. Records arriving before this call are
	// dropped — acceptable because the TUI isn't rendering yet.
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `TicketHub %s — interactive terminal client for event booking.

Browse events, sign in or create an account, book seats, and manage
your bookings. The backend URL resolves from --api-url, then the
TICKETHUB_API_URL environment variable, then the config file.

Usage: tickethub [flags]

Flags:
%s
Keys:
  1/2        switch between Events and My Bookings
  Enter/b    book the selected event
  f          event type filter
  /          fuzzy filter
  x          cancel the selected booking
  a          sign in / sign out
  q          quit
`, version.Short(), flagSet.FlagUsages())
}

// openFileLogHandler creates a slog.JSONHandler writing to the given
// path. Returns the handler, a cleanup function to close the file,
// and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
