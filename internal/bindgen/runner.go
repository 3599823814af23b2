package bindgen

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// RunResult is the outcome of a single subprocess invocation.
type RunResult struct {
	Success    bool
	ReturnCode int
	Stdout     string
	Stderr     string
	Duration   time.Duration
	Err        error
}

// Runner executes external commands. Strategies depend on this interface
// so tests can substitute a fake.
type Runner interface {
	// Run executes bin with args in workDir and waits for completion.
	// An empty workDir means the current working directory.
	Run(ctx context.Context, workDir, bin string, args ...string) RunResult

	// LookPath reports whether bin can be found on PATH.
	LookPath(bin string) bool
}

// ExecRunner runs commands through os/exec with a per-invocation timeout.
type ExecRunner struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewExecRunner creates an ExecRunner with the given timeout. A nil
// logger disables diagnostics.
func NewExecRunner(timeout time.Duration, logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{Timeout: timeout, Logger: logger}
}

// Run executes the command, capturing stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, workDir, bin string, args ...string) RunResult {
	start := time.Now()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := RunResult{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	if err != nil {
		result.Success = false
		result.Err = err
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ReturnCode = exitErr.ExitCode()
		} else {
			result.ReturnCode = 1
		}
	} else {
		result.Success = true
		result.ReturnCode = 0
	}

	r.Logger.Debug("command finished",
		"bin", bin,
		"args", args,
		"dir", workDir,
		"code", result.ReturnCode,
		"duration", result.Duration,
	)

	return result
}

// LookPath reports whether bin is on PATH.
func (r *ExecRunner) LookPath(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
