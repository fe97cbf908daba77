// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// rollcall is a terminal client for a school's extracurricular
// activity service. It lists every activity with its schedule,
// remaining capacity, and participants; signs students up by email;
// and unregisters them after an explicit confirmation. The list is
// re-fetched after every accepted change.
//
// Settings come from built-in defaults, an optional YAML or JSONC
// file (--config or ROLLCALL_CONFIG), ROLLCALL_* environment
// variables, and finally the flags below.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/rollcall/lib/activityclient"
	"github.com/bureau-foundation/rollcall/lib/cli"
	"github.com/bureau-foundation/rollcall/lib/config"
	"github.com/bureau-foundation/rollcall/lib/roster"
	"github.com/bureau-foundation/rollcall/lib/rosterui"
	"github.com/bureau-foundation/rollcall/lib/tui"
	"github.com/bureau-foundation/rollcall/lib/version"
)

func main() {
	os.Exit(cli.Report(os.Stderr, run()))
}

// options holds the flag values that override the loaded config.
type options struct {
	configPath string
	serverURL  string
	locale     string
	title      string
	logOutput  string
	logLevel   string
	noColor    bool
}

func run() error {
	var opts options

	flagSet := pflag.NewFlagSet("rollcall", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.ConfigEnvVar+")")
	flagSet.StringVarP(&opts.serverURL, "server", "s", "", "base URL of the activity service")
	flagSet.StringVar(&opts.locale, "locale", "", "language for labels and messages: en, fr, es (default: $LANG)")
	flagSet.StringVar(&opts.title, "title", "", "heading shown above the activity list")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status line)")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "minimum level for --log-output: debug, info, warn, error")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the other rollcall binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print(os.Stdout, "rollcall")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run rollcall --help for usage.")
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(flagSet, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return runClient(ctx, cfg)
}

// loadConfig layers the flags that were set on top of the file and
// environment configuration, then validates the result.
func loadConfig(flagSet *pflag.FlagSet, opts options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err).WithHint("Pass --config with an existing file or unset %s.", config.ConfigEnvVar)
		}
		return nil, cli.Validation("%w", err)
	}

	if flagSet.Changed("server") {
		cfg.Service.URL = opts.serverURL
	}
	if flagSet.Changed("locale") {
		cfg.Display.Locale = opts.locale
	}
	if flagSet.Changed("title") {
		cfg.Display.Title = opts.title
	}
	if flagSet.Changed("log-output") {
		cfg.Log.Output = opts.logOutput
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flagSet.Changed("no-color") {
		cfg.Display.NoColor = opts.noColor
	}
	if cfg.Display.Locale == "" {
		cfg.Display.Locale = environmentLocale()
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// environmentLocale follows the POSIX precedence of LC_ALL, LC_MESSAGES,
// then LANG.
func environmentLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// runClient wires the activity client, the controller, and the TUI,
// then blocks until the operator quits.
//
// Logging goes through a TUILogHandler that shows warnings and errors
// on the status line instead of writing to stderr, which would corrupt
// the alt-screen display. --log-output adds a JSON file handler for
// post-mortem debugging.
func runClient(ctx context.Context, cfg *config.Config) error {
	if cfg.Display.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ordering, err := roster.ParseRefreshOrdering(cfg.Display.RefreshOrdering)
	if err != nil {
		return cli.Validation("%w", err)
	}
	expiry, err := roster.ParseNoticeExpiry(cfg.Display.NoticeExpiry)
	if err != nil {
		return cli.Validation("%w", err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return cli.Validation("%w", err)
	}

	tuiHandler := rosterui.NewTUILogHandler(slog.LevelWarn)
	var logger *slog.Logger
	if cfg.Log.Output != "" {
		fileHandler, closeFile, fileErr := cli.OpenFileLogHandler(cfg.Log.Output, level)
		if fileErr != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.Log.Output, fileErr)
		}
		defer closeFile()
		logger = slog.New(cli.FanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	client, err := activityclient.NewClient(activityclient.Config{
		BaseURL:        cfg.Service.URL,
		RequestTimeout: cfg.Service.RequestTimeout,
		Logger:         logger.With("component", "activityclient"),
	})
	if err != nil {
		return cli.Validation("%w", err).WithHint("Set --server to the activity service, e.g. http://localhost:8000.")
	}

	sinks := rosterui.NewSinks(ctx)
	controller, err := roster.NewController(roster.Config{
		Service:           client,
		List:              sinks,
		Selector:          sinks,
		Notice:            sinks,
		Form:              sinks,
		Confirm:           sinks,
		Logger:            logger.With("component", "roster"),
		Locale:            cfg.Display.Locale,
		NoticeDelay:       cfg.Display.NoticeDelay,
		HighlightDuration: cfg.Display.HighlightDuration,
		RefreshOrdering:   ordering,
		NoticeExpiry:      expiry,
	})
	if err != nil {
		return cli.Internal("creating controller: %w", err)
	}

	logger.Info("starting",
		"server", client.BaseURL(),
		"locale", controller.Strings().Tag().String(),
		"refresh_ordering", ordering.String(),
		"notice_expiry", expiry.String(),
	)

	model := rosterui.NewModel(ctx, controller, controller.Strings())
	model.SetTitle(cfg.Display.Title)
	model.SetTheme(tui.DefaultTheme)

	program := tea.NewProgram(model, tea.WithAltScreen())
	sinks.SetSender(program)
	tuiHandler.SetSender(program)

	_, err = program.Run()
	if err != nil {
		return cli.Internal("running interface: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `rollcall: sign students up for extracurricular activities.

Lists every activity offered by the activity service with its
schedule, remaining spots, and participants. Enter an email, pick an
activity, and press enter to sign up. Move onto a participant and
press x to unregister them.

Usage:
  rollcall [flags]

Examples:
  # Connect to a local development server
  rollcall --server http://localhost:8000

  # Use a config file and French labels
  rollcall --config rollcall.yaml --locale fr

  # Keep a debug log while using the interface
  rollcall --log-output /tmp/rollcall.log --log-level debug

Keys:
  tab / shift+tab   move between the list, email field, and activity selector
  up / down         move through participants
  x / delete        unregister the focused participant
  left / right      change the selected activity; space opens the menu
  enter             sign up
  r                 refresh
  q / ctrl+c        quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
