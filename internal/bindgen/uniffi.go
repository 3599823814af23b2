package bindgen

import (
	"context"
)

// UniffiBinStrategy invokes a standalone uniffi-bindgen executable.
// This is the preferred path: no compilation step, fast startup.
type UniffiBinStrategy struct {
	Bin    string
	Runner Runner
}

// Name identifies the strategy in logs and error messages.
func (s *UniffiBinStrategy) Name() string { return "uniffi-bindgen" }

// Available reports whether the executable is on PATH.
func (s *UniffiBinStrategy) Available() bool {
	return s.Runner.LookPath(s.Bin)
}

// Generate emits bindings for every requested language.
func (s *UniffiBinStrategy) Generate(ctx context.Context, req Request) error {
	for _, lang := range req.Languages {
		args := []string{
			"generate",
			"--library", req.Layout.LibraryPath,
			"--language", lang,
			"--out-dir", req.Layout.OutDir,
			"--crate", req.CrateName,
		}
		if req.ConfigOverride != "" {
			args = append(args, "--config", req.ConfigOverride)
		}

		res := s.Runner.Run(ctx, "", s.Bin, args...)
		if !res.Success {
			return &GenerateError{
				Strategy: s.Name(),
				Stderr:   res.Stderr,
				Guidance: "install it with: cargo install uniffi-bindgen, or check the library exports uniffi metadata",
				Wrapped:  res.Err,
			}
		}
	}
	return nil
}
