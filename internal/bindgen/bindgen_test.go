package bindgen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mepassa/mepassa-bindgen/internal/layout"
)

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	onPath  map[string]bool
	results map[string]RunResult // keyed by bin
	calls   []fakeCall
}

type fakeCall struct {
	workDir string
	bin     string
	args    []string
}

func (f *fakeRunner) Run(_ context.Context, workDir, bin string, args ...string) RunResult {
	f.calls = append(f.calls, fakeCall{workDir: workDir, bin: bin, args: args})
	if res, ok := f.results[bin]; ok {
		return res
	}
	return RunResult{Success: true}
}

func (f *fakeRunner) LookPath(bin string) bool {
	return f.onPath[bin]
}

// testLayout builds a layout over temp dirs with the given artifacts present.
func testLayout(t *testing.T, withLib, withUDL bool) *layout.Layout {
	t.Helper()
	root := t.TempDir()
	l := &layout.Layout{
		ProjectRoot: root,
		CoreDir:     filepath.Join(root, "core"),
		UDLPath:     filepath.Join(root, "core", "src", "mepassa.udl"),
		LibraryPath: filepath.Join(root, "target", "release", "libmepassa_core.dylib"),
		OutDir:      filepath.Join(root, "out"),
	}
	if withLib {
		mustWrite(t, l.LibraryPath)
	}
	if withUDL {
		mustWrite(t, l.UDLPath)
	}
	return l
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPreflightMissingLibrary(t *testing.T) {
	t.Parallel()

	l := testLayout(t, false, true)
	err := Preflight(l)
	if !errors.Is(err, ErrMissingLibrary) {
		t.Fatalf("Preflight() error = %v, want ErrMissingLibrary", err)
	}

	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatal("error should be a *CheckError")
	}
	if checkErr.Guidance == "" {
		t.Error("CheckError should carry recovery guidance")
	}
}

func TestPreflightMissingUDL(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, false)
	if err := Preflight(l); !errors.Is(err, ErrMissingUDL) {
		t.Fatalf("Preflight() error = %v, want ErrMissingUDL", err)
	}
}

func TestPreflightAllPresent(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	if err := Preflight(l); err != nil {
		t.Fatalf("Preflight() error = %v, want nil", err)
	}
}

func TestGeneratorPrefersFirstAvailableStrategy(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{onPath: map[string]bool{"uniffi-bindgen": true, "cargo": true}}
	g := NewGenerator(testLogger(),
		&UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner},
		&CargoStrategy{Bin: "cargo", Runner: runner},
	)

	err := g.Generate(context.Background(), Request{
		Layout:    l,
		Languages: []string{"swift"},
		CrateName: "mepassa",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(runner.calls))
	}
	if runner.calls[0].bin != "uniffi-bindgen" {
		t.Errorf("invoked %q, want uniffi-bindgen", runner.calls[0].bin)
	}
}

func TestGeneratorFallsBackWhenUnavailable(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{onPath: map[string]bool{"cargo": true}}
	g := NewGenerator(testLogger(),
		&UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner},
		&CargoStrategy{Bin: "cargo", Runner: runner},
	)

	err := g.Generate(context.Background(), Request{
		Layout:    l,
		Languages: []string{"swift"},
		CrateName: "mepassa",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0].bin != "cargo" {
		t.Fatalf("expected single cargo invocation, got %+v", runner.calls)
	}
	// cargo must run from the core crate directory.
	if runner.calls[0].workDir != l.CoreDir {
		t.Errorf("cargo workDir = %q, want %q", runner.calls[0].workDir, l.CoreDir)
	}
}

func TestGeneratorSurfacesStderrOnFailure(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{
		onPath: map[string]bool{"cargo": true},
		results: map[string]RunResult{
			"cargo": {Success: false, ReturnCode: 101, Stderr: "error[E0433]: unresolved import", Err: errors.New("exit status 101")},
		},
	}
	g := NewGenerator(testLogger(),
		&UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner},
		&CargoStrategy{Bin: "cargo", Runner: runner},
	)

	err := g.Generate(context.Background(), Request{
		Layout:    l,
		Languages: []string{"swift"},
		CrateName: "mepassa",
	})
	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error = %v, want *GenerateError", err)
	}
	if genErr.Stderr != "error[E0433]: unresolved import" {
		t.Errorf("Stderr = %q, captured stream not surfaced", genErr.Stderr)
	}
	if genErr.Guidance == "" {
		t.Error("GenerateError should carry manual-recovery guidance")
	}
}

func TestGeneratorNoStrategyAvailable(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{onPath: map[string]bool{}}
	g := NewGenerator(testLogger(),
		&UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner},
		&CargoStrategy{Bin: "cargo", Runner: runner},
	)

	err := g.Generate(context.Background(), Request{
		Layout:    l,
		Languages: []string{"swift"},
		CrateName: "mepassa",
	})
	if !errors.Is(err, ErrNoStrategy) {
		t.Fatalf("Generate() error = %v, want ErrNoStrategy", err)
	}
}

func TestGeneratorCreatesOutDir(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{onPath: map[string]bool{"uniffi-bindgen": true}}
	g := NewGenerator(testLogger(), &UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner})

	if err := g.Generate(context.Background(), Request{Layout: l, Languages: []string{"swift"}}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if _, err := os.Stat(l.OutDir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestUniffiBinArgs(t *testing.T) {
	t.Parallel()

	l := testLayout(t, true, true)
	runner := &fakeRunner{onPath: map[string]bool{"uniffi-bindgen": true}}
	s := &UniffiBinStrategy{Bin: "uniffi-bindgen", Runner: runner}

	err := s.Generate(context.Background(), Request{
		Layout:         l,
		Languages:      []string{"swift", "kotlin"},
		CrateName:      "mepassa",
		ConfigOverride: "/etc/uniffi.toml",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expected one invocation per language, got %d", len(runner.calls))
	}

	args := runner.calls[0].args
	for _, want := range []string{"generate", "--library", l.LibraryPath, "--language", "swift", "--out-dir", l.OutDir, "--config", "/etc/uniffi.toml"} {
		if !slices.Contains(args, want) {
			t.Errorf("args missing %q: %v", want, args)
		}
	}
	if !slices.Contains(runner.calls[1].args, "kotlin") {
		t.Errorf("second call should target kotlin: %v", runner.calls[1].args)
	}
}

func TestBuildCoreFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		onPath: map[string]bool{"cargo": true},
		results: map[string]RunResult{
			"cargo": {Success: false, ReturnCode: 101, Stderr: "compile error", Err: errors.New("exit status 101")},
		},
	}
	err := BuildCore(context.Background(), runner, "cargo", t.TempDir())
	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("BuildCore() error = %v, want *GenerateError", err)
	}
	if genErr.Stderr != "compile error" {
		t.Errorf("Stderr = %q", genErr.Stderr)
	}
}

func TestListGeneratedSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"mepassaFFI.h", "mepassa.swift", "mepassaFFI.modulemap"} {
		mustWrite(t, filepath.Join(dir, name))
	}

	got := ListGenerated(dir)
	want := []string{"mepassa.swift", "mepassaFFI.h", "mepassaFFI.modulemap"}
	if len(got) != len(want) {
		t.Fatalf("ListGenerated() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListGenerated()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListGeneratedMissingDir(t *testing.T) {
	t.Parallel()

	if got := ListGenerated(filepath.Join(t.TempDir(), "nope")); got != nil {
		t.Errorf("ListGenerated() on missing dir = %v, want nil", got)
	}
}

func TestSwiftModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		crate string
		want  string
	}{
		{"mepassa", "Mepassa"},
		{"mepassa_core", "MepassaCore"},
	}
	for _, tt := range tests {
		if got := SwiftModuleName(tt.crate); got != tt.want {
			t.Errorf("SwiftModuleName(%q) = %q, want %q", tt.crate, got, tt.want)
		}
	}
}
