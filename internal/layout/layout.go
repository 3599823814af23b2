// Package layout resolves the filesystem locations the binding generator
// works with: the Rust workspace root, the core crate, the interface
// definition, the compiled library, and the bindings output directory.
// Paths are resolved once and immutable afterwards.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mepassa/mepassa-bindgen/internal/defs"
)

// ErrRootNotFound indicates no Rust workspace root could be located.
var ErrRootNotFound = errors.New("layout: workspace root not found (no Cargo.toml with a core/ crate in any parent directory)")

// Layout holds every path the generator needs, fully resolved.
type Layout struct {
	ProjectRoot string
	CoreDir     string
	UDLPath     string
	LibraryPath string
	OutDir      string
}

// Overrides carries optional path overrides from flags or configuration.
// Empty fields fall back to the fixed workspace layout.
type Overrides struct {
	ProjectRoot string
	CoreDir     string
	UDL         string
	Library     string
	OutDir      string
}

// LibraryExt returns the shared library suffix for the given GOOS.
func LibraryExt(goos string) string {
	switch goos {
	case "darwin":
		return "dylib"
	case "windows":
		return "dll"
	default:
		return "so"
	}
}

// libraryFileName returns the platform library file name for the core crate.
func libraryFileName(goos string) string {
	if goos == "windows" {
		return defs.LibBaseName + "." + LibraryExt(goos)
	}
	return "lib" + defs.LibBaseName + "." + LibraryExt(goos)
}

// Resolve builds a Layout starting from startDir, applying any overrides.
// Relative override paths are interpreted against the current working
// directory, not the project root.
func Resolve(startDir string, ov Overrides) (*Layout, error) {
	root := ov.ProjectRoot
	if root == "" {
		found, err := findRoot(startDir)
		if err != nil {
			return nil, err
		}
		root = found
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("layout: resolve project root: %w", err)
	}

	l := &Layout{
		ProjectRoot: root,
		CoreDir:     filepath.Join(root, defs.CoreDirName),
		UDLPath:     filepath.Join(root, defs.CoreDirName, "src", defs.UDLFileName),
		LibraryPath: filepath.Join(root, "target", "release", libraryFileName(runtime.GOOS)),
		OutDir:      filepath.Join(root, "ios", "MePassa", "Generated"),
	}

	if ov.CoreDir != "" {
		l.CoreDir = absPath(ov.CoreDir)
	}
	if ov.UDL != "" {
		l.UDLPath = absPath(ov.UDL)
	}
	if ov.Library != "" {
		l.LibraryPath = absPath(ov.Library)
	}
	if ov.OutDir != "" {
		l.OutDir = absPath(ov.OutDir)
	}
	return l, nil
}

// absPath converts p to an absolute path. filepath.Abs only fails when
// the working directory is gone, in which case the raw path is returned.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// findRoot walks up from dir looking for a directory that contains both
// Cargo.toml and the core crate directory.
func findRoot(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("layout: resolve start dir: %w", err)
	}
	for {
		manifest := filepath.Join(cur, defs.CargoToml)
		coreDir := filepath.Join(cur, defs.CoreDirName)
		if fileExists(manifest) && dirExists(coreDir) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", ErrRootNotFound
		}
		cur = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
