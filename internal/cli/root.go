// Package cli wires configuration, input, logging and the terminal UI into
// the fuzz command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"fuzz/internal/config"
	"fuzz/internal/domain"
	"fuzz/internal/logger"
	"fuzz/internal/session"
	"fuzz/internal/source"
	"fuzz/internal/ui"
)

// Version is set at build time
var Version = "dev"

// Exit statuses
const (
	ExitSelected       = 0
	ExitNoSelection    = 1
	ExitStartupFailure = 2
	ExitAborted        = 130
)

// ExitError carries a non-zero exit status out of a command
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// App holds the process resources a command runs against
type App struct {
	Stdin    *os.File
	Terminal ui.Terminal
}

type rootFlags struct {
	configPath  string
	height      int
	prompt      string
	query       string
	legacyKeys  bool
	showScores  bool
	showHelp    bool
	fullscreen  bool
	resetOnEdit bool
	logFile     string
	logLevel    string
}

// NewRootCommand builds the fuzz command tree
func NewRootCommand(app *App) *cobra.Command {
	return newRootCommand(app, &rootFlags{})
}

func newRootCommand(app *App, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Interactively pick one line from stdin",
		Long: `fuzz reads candidate lines from stdin, ranks them against the query you
type and prints the line you select to stdout.

Exit status is 0 when a line was selected, 1 when there was nothing to
select, 130 when the picker was cancelled and 2 when it could not start.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, app, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default $FUZZ_CONFIG or <user config dir>/fuzz/config.toml)")

	f := cmd.Flags()
	f.IntVar(&flags.height, "height", 0, "Number of visible candidates")
	f.StringVar(&flags.prompt, "prompt", "", "Prompt shown before the query")
	f.StringVarP(&flags.query, "query", "q", "", "Start with this query")
	f.BoolVar(&flags.legacyKeys, "legacy-keys", false, "Type unrecognised control keys into the query")
	f.BoolVar(&flags.showScores, "show-scores", false, "Show the score next to each candidate")
	f.BoolVar(&flags.showHelp, "show-help", false, "Show key bindings under the prompt")
	f.BoolVar(&flags.fullscreen, "fullscreen", true, "Use the alternate screen")
	f.BoolVar(&flags.resetOnEdit, "reset-selection", true, "Move the selection to the best match after each edit")
	f.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newConfigCommand(flags))

	return cmd
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	cmd := NewRootCommand(&App{Stdin: os.Stdin})
	return exitCode(cmd.Execute(), os.Stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitSelected
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintf(stderr, "fuzz: %v\n", err)
	return ExitStartupFailure
}

func configService(flags *rootFlags) config.ConfigService {
	if flags.configPath != "" {
		return config.NewConfigServiceAt(flags.configPath)
	}
	return config.NewConfigService()
}

// effectiveConfig loads the config file and applies flags the user set
func effectiveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, config.ConfigService, error) {
	svc := configService(flags)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	f := cmd.Flags()
	if f.Changed("height") {
		cfg.Height = flags.height
	}
	if f.Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if f.Changed("legacy-keys") {
		cfg.LegacyKeys = flags.legacyKeys
	}
	if f.Changed("show-scores") {
		cfg.ShowScores = flags.showScores
	}
	if f.Changed("show-help") {
		cfg.ShowHelp = flags.showHelp
	}
	if f.Changed("fullscreen") {
		cfg.Fullscreen = flags.fullscreen
	}
	if f.Changed("reset-selection") {
		cfg.ResetSelectionOnEdit = flags.resetOnEdit
	}
	if f.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func runPicker(cmd *cobra.Command, app *App, flags *rootFlags) error {
	cfg, svc, err := effectiveConfig(cmd, flags)
	if err != nil {
		return err
	}

	lg, closer, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	lg.Info("starting", "version", Version, "config", svc.Path())

	lines, err := source.ReadStdin(app.Stdin)
	if err != nil {
		lg.Error("reading input", "err", err)
		return err
	}
	lg.Info("input read", "candidates", len(lines))

	sess := session.New(lines, session.Options{
		Window:      cfg.Height,
		ResetOnEdit: cfg.ResetSelectionOnEdit,
		Logger:      lg,
	})
	for _, r := range flags.query {
		sess.Handle(domain.AppendCharEvent{Char: r})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = ui.Run(ctx, sess, app.Terminal, ui.Options{
		Prompt:     cfg.Prompt,
		Window:     cfg.Height,
		ShowScores: cfg.ShowScores,
		ShowHelp:   cfg.ShowHelp,
		Fullscreen: cfg.Fullscreen,
		LegacyKeys: cfg.LegacyKeys,
		Logger:     lg,
	})
	if err != nil {
		lg.Error("terminal", "err", err)
		return err
	}

	return finish(cmd.OutOrStdout(), sess, lg)
}

// finish prints the result of a terminated session and maps its state to an exit status
func finish(out io.Writer, sess *session.Session, lg *log.Logger) error {
	text, ok := sess.Result()
	lg.Info("session finished", "state", sess.State(), "selected", ok)

	switch {
	case ok:
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("failed to write selection: %w", err)
		}
		return nil
	case sess.State() == domain.StateFinished:
		return &ExitError{Code: ExitNoSelection}
	default:
		return &ExitError{Code: ExitAborted}
	}
}
