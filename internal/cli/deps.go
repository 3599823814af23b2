// Package cli provides the Cobra command tree and dependency wiring for
// the mepassa-bindgen CLI.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mepassa/mepassa-bindgen/internal/bindgen"
	"github.com/mepassa/mepassa-bindgen/internal/config"
	"github.com/mepassa/mepassa-bindgen/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the
// composition root: the only place concrete types are instantiated.
type Dependencies struct {
	Config    *config.Config
	Runner    bindgen.Runner
	Generator *bindgen.Generator
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Printer   *ui.Printer
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the dependencies from the resolved
// configuration. Called once per invocation, after flags are parsed but
// before any command body runs.
func InitDependencies(cfg *config.Config, verbose bool) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.LogLevel),
		}))
	}

	theme := ui.NewTheme(cfg.NoColor)
	headless := ui.NewHeadlessManager()
	if cfg.NonInteractive {
		headless.ForceHeadless(true)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	runner := bindgen.NewExecRunner(timeout, logger)

	deps = &Dependencies{
		Config: cfg,
		Runner: runner,
		Generator: bindgen.NewDefaultGenerator(bindgen.Options{
			UniffiBin: cfg.Tools.UniffiBin,
			CargoBin:  cfg.Tools.CargoBin,
			Timeout:   timeout,
			Logger:    logger,
		}),
		Theme:    theme,
		Headless: headless,
		Printer:  ui.NewPrinter(theme),
		Logger:   logger,
	}
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newSpinner creates a spinner bound to the current theme and headless state.
func newSpinner(title string) ui.Spinner {
	return ui.NewSpinner(deps.Theme, deps.Headless, title)
}

// parseLogLevel maps a config log level string to a slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
