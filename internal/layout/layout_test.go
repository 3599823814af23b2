package layout

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// setupWorkspace creates a minimal Rust workspace under a temp dir and
// returns its root.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "core", "src"), 0o755); err != nil {
		t.Fatalf("failed to create core dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[workspace]\n"), 0o644); err != nil {
		t.Fatalf("failed to write Cargo.toml: %v", err)
	}
	return root
}

func TestLibraryExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "dylib"},
		{"linux", "so"},
		{"windows", "dll"},
		{"freebsd", "so"},
	}
	for _, tt := range tests {
		if got := LibraryExt(tt.goos); got != tt.want {
			t.Errorf("LibraryExt(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestResolveFromRoot(t *testing.T) {
	t.Parallel()

	root := setupWorkspace(t)
	l, err := Resolve(root, Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if l.CoreDir != filepath.Join(l.ProjectRoot, "core") {
		t.Errorf("CoreDir = %q, want core under root", l.CoreDir)
	}
	if l.UDLPath != filepath.Join(l.ProjectRoot, "core", "src", "mepassa.udl") {
		t.Errorf("UDLPath = %q", l.UDLPath)
	}
	wantLib := "libmepassa_core." + LibraryExt(runtime.GOOS)
	if runtime.GOOS == "windows" {
		wantLib = "mepassa_core.dll"
	}
	if filepath.Base(l.LibraryPath) != wantLib {
		t.Errorf("LibraryPath base = %q, want %q", filepath.Base(l.LibraryPath), wantLib)
	}
	if l.OutDir != filepath.Join(l.ProjectRoot, "ios", "MePassa", "Generated") {
		t.Errorf("OutDir = %q", l.OutDir)
	}
}

func TestResolveWalksUp(t *testing.T) {
	t.Parallel()

	root := setupWorkspace(t)
	nested := filepath.Join(root, "ios", "scripts")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	l, err := Resolve(nested, Overrides{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	// Compare via EvalSymlinks: t.TempDir may sit behind a symlink on darwin.
	gotRoot, _ := filepath.EvalSymlinks(l.ProjectRoot)
	wantRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("ProjectRoot = %q, want %q", gotRoot, wantRoot)
	}
}

func TestResolveRootNotFound(t *testing.T) {
	t.Parallel()

	empty := t.TempDir()
	_, err := Resolve(empty, Overrides{})
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrRootNotFound", err)
	}
}

func TestResolveOverrides(t *testing.T) {
	t.Parallel()

	root := setupWorkspace(t)
	other := t.TempDir()
	lib := filepath.Join(other, "libmepassa_core.so")
	out := filepath.Join(other, "generated")

	l, err := Resolve(root, Overrides{Library: lib, OutDir: out})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if l.LibraryPath != lib {
		t.Errorf("LibraryPath = %q, want %q", l.LibraryPath, lib)
	}
	if l.OutDir != out {
		t.Errorf("OutDir = %q, want %q", l.OutDir, out)
	}
}

func TestResolveExplicitRootSkipsDiscovery(t *testing.T) {
	t.Parallel()

	// No Cargo.toml anywhere: explicit root must still resolve.
	dir := t.TempDir()
	l, err := Resolve(dir, Overrides{ProjectRoot: dir})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if l.ProjectRoot == "" {
		t.Error("ProjectRoot should be set")
	}
}
