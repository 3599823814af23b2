package bindgen

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mepassa/mepassa-bindgen/internal/layout"
)

// Request carries everything a strategy needs for one generation run.
type Request struct {
	Layout         *layout.Layout
	Languages      []string
	CrateName      string
	ConfigOverride string
}

// Strategy is one way of invoking the binding generator. Strategies are
// tried in order; an unavailable strategy is skipped silently, a failure
// from an available one is terminal.
type Strategy interface {
	Name() string
	Available() bool
	Generate(ctx context.Context, req Request) error
}

// Generator runs an ordered strategy chain.
type Generator struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewGenerator creates a Generator over the given strategies. A nil
// logger disables diagnostics.
func NewGenerator(logger *slog.Logger, strategies ...Strategy) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{strategies: strategies, logger: logger}
}

// Options bundles the knobs for the default chain.
type Options struct {
	UniffiBin string
	CargoBin  string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewDefaultGenerator wires the standard chain: the standalone
// uniffi-bindgen executable first, the cargo-built CLI as fallback.
func NewDefaultGenerator(opts Options) *Generator {
	runner := NewExecRunner(opts.Timeout, opts.Logger)
	return NewGenerator(opts.Logger,
		&UniffiBinStrategy{Bin: opts.UniffiBin, Runner: runner},
		&CargoStrategy{Bin: opts.CargoBin, Runner: runner},
	)
}

// Generate ensures the output directory exists, then attempts each
// strategy in order. It returns nil on the first success,
// ErrNoStrategy when every strategy was unavailable, and the
// strategy's error when an available one failed.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	if err := os.MkdirAll(req.Layout.OutDir, 0o755); err != nil {
		return &GenerateError{Strategy: "setup", Wrapped: err}
	}

	for _, s := range g.strategies {
		if !s.Available() {
			g.logger.Debug("strategy unavailable, skipping", "strategy", s.Name())
			continue
		}
		g.logger.Info("generating bindings", "strategy", s.Name())
		return s.Generate(ctx, req)
	}
	return ErrNoStrategy
}
