package bindgen

import (
	"context"
)

// CargoStrategy runs the uniffi CLI through cargo from the core crate
// directory. It works without uniffi-bindgen installed, at the cost of
// compiling the CLI on first use.
type CargoStrategy struct {
	Bin    string
	Runner Runner
}

// Name identifies the strategy in logs and error messages.
func (s *CargoStrategy) Name() string { return "cargo" }

// Available reports whether cargo is on PATH.
func (s *CargoStrategy) Available() bool {
	return s.Runner.LookPath(s.Bin)
}

// Generate emits bindings for every requested language. The command runs
// with the core crate as its working directory so cargo resolves the
// right manifest; cmd.Dir keeps the change local to the child process.
func (s *CargoStrategy) Generate(ctx context.Context, req Request) error {
	for _, lang := range req.Languages {
		args := []string{
			"run", "--bin", "uniffi-bindgen", "--features", "uniffi/cli", "--",
			"generate",
			"--library", req.Layout.LibraryPath,
			"--language", lang,
			"--out-dir", req.Layout.OutDir,
		}
		if req.ConfigOverride != "" {
			args = append(args, "--config", req.ConfigOverride)
		}

		res := s.Runner.Run(ctx, req.Layout.CoreDir, s.Bin, args...)
		if !res.Success {
			return &GenerateError{
				Strategy: s.Name(),
				Stderr:   res.Stderr,
				Guidance: "install the generator manually: cargo install uniffi-bindgen, " +
					"or run: cd core && cargo run --example generate_bindings",
				Wrapped: res.Err,
			}
		}
	}
	return nil
}

// BuildCore compiles the core crate in release mode. Used by the
// optional --build step before generation.
func BuildCore(ctx context.Context, runner Runner, cargoBin, coreDir string) error {
	res := runner.Run(ctx, coreDir, cargoBin, "build", "--lib", "--release")
	if !res.Success {
		return &GenerateError{
			Strategy: "cargo build",
			Stderr:   res.Stderr,
			Guidance: "fix the build errors in the core crate, then re-run",
			Wrapped:  res.Err,
		}
	}
	return nil
}
