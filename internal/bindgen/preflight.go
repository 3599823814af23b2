package bindgen

import (
	"os"

	"github.com/mepassa/mepassa-bindgen/internal/defs"
	"github.com/mepassa/mepassa-bindgen/internal/layout"
)

// Check is a single precondition with a human-readable label.
type Check struct {
	Label    string
	Path     string
	Guidance string
	Missing  error // sentinel returned when the path is absent
}

// Checks returns the preconditions for generating bindings from l.
func Checks(l *layout.Layout) []Check {
	return []Check{
		{
			Label:    "compiled core library",
			Path:     l.LibraryPath,
			Guidance: "build the core first: cd core && cargo build --release",
			Missing:  ErrMissingLibrary,
		},
		{
			Label:    "interface definition (UDL)",
			Path:     l.UDLPath,
			Guidance: "the core crate should provide src/" + defs.UDLFileName,
			Missing:  ErrMissingUDL,
		},
	}
}

// Preflight verifies every required artifact exists. It returns the
// first failure as a *CheckError and is silent on success.
func Preflight(l *layout.Layout) error {
	for _, c := range Checks(l) {
		if _, err := os.Stat(c.Path); err != nil {
			return &CheckError{
				Path:     c.Path,
				Guidance: c.Guidance,
				Wrapped:  c.Missing,
			}
		}
	}
	return nil
}
