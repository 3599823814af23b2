package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mepassa/mepassa-bindgen/internal/bindgen"
	"github.com/mepassa/mepassa-bindgen/internal/config"
	"github.com/mepassa/mepassa-bindgen/internal/layout"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate bindings from the core library and its UDL",
	Long: `Generate foreign-language bindings for mepassa-core.

The compiled library and the interface definition must exist before
generation; run with --build to compile the core crate first.

Examples:
  mepassa-bindgen generate
  mepassa-bindgen generate --language swift --language kotlin
  mepassa-bindgen generate --build --out-dir bindings/`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	registerGenerateFlags(generateCmd)
}

// registerGenerateFlags adds the generation flags. They are registered
// on both the root command (bare invocation) and the generate subcommand.
func registerGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("language", nil, "Binding language to generate (repeatable; default from config)")
	cmd.Flags().String("out-dir", "", "Output directory for generated sources")
	cmd.Flags().String("library", "", "Path to the compiled core library")
	cmd.Flags().String("udl", "", "Path to the interface definition file")
	cmd.Flags().String("config-override", "", "uniffi.toml passed through to the generator")
	cmd.Flags().Bool("build", false, "Run 'cargo build --lib --release' before generating")
}

// resolveLayout combines configuration and flags into the final layout.
func resolveLayout(cmd *cobra.Command) (*layout.Layout, error) {
	cfg := deps.Config
	ov := layout.Overrides{
		ProjectRoot: getStringFlag(cmd, "project-root"),
		CoreDir:     cfg.Paths.CoreDir,
		UDL:         cfg.Paths.UDL,
		Library:     cfg.Paths.Library,
		OutDir:      cfg.Paths.OutDir,
	}
	if ov.ProjectRoot == "" {
		ov.ProjectRoot = cfg.Paths.ProjectRoot
	}
	if v := getStringFlag(cmd, "udl"); v != "" {
		ov.UDL = v
	}
	if v := getStringFlag(cmd, "library"); v != "" {
		ov.Library = v
	}
	if v := getStringFlag(cmd, "out-dir"); v != "" {
		ov.OutDir = v
	}
	return layout.Resolve(".", ov)
}

// runGenerate executes the full generation workflow: resolve layout,
// check preconditions, optionally build the core, run the strategy
// chain, and report the generated files.
func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := deps.Config
	p := deps.Printer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	l, err := resolveLayout(cmd)
	if err != nil {
		return err
	}

	languages := cfg.Languages
	if flagLangs, err := cmd.Flags().GetStringArray("language"); err == nil && len(flagLangs) > 0 {
		languages = flagLangs
	}
	for _, lang := range languages {
		if !slices.Contains(config.SupportedLanguages, lang) {
			return fmt.Errorf("unsupported language %q (supported: %s)", lang, strings.Join(config.SupportedLanguages, ", "))
		}
	}
	configOverride := cfg.ConfigOverride
	if v := getStringFlag(cmd, "config-override"); v != "" {
		configOverride = v
	}

	p.Title("Generating bindings for %s", bindgen.SwiftModuleName(cfg.CrateName))
	p.Step("UDL file: %s", l.UDLPath)
	p.Step("Library:  %s", l.LibraryPath)
	p.Step("Output:   %s", l.OutDir)

	if getBoolFlag(cmd, "build") {
		spin := newSpinner("Building core crate (release)")
		err := bindgen.BuildCore(ctx, deps.Runner, cfg.Tools.CargoBin, l.CoreDir)
		spin.Stop()
		if err != nil {
			return err
		}
		p.Success("core crate built")
	}

	if err := bindgen.Preflight(l); err != nil {
		return err
	}

	req := bindgen.Request{
		Layout:         l,
		Languages:      languages,
		CrateName:      cfg.CrateName,
		ConfigOverride: configOverride,
	}

	spin := newSpinner("Generating " + joinLanguages(languages) + " bindings")
	err = deps.Generator.Generate(ctx, req)
	spin.Stop()
	if err != nil {
		return err
	}
	p.Success("bindings generated")

	printReport(l, cfg.CrateName)
	return nil
}

// printReport lists the generated files and the wiring instructions.
func printReport(l *layout.Layout, crateName string) {
	p := deps.Printer

	files := bindgen.ListGenerated(l.OutDir)
	if len(files) > 0 {
		p.Step("")
		p.Step("Generated files:")
		for _, name := range files {
			p.Muted("  - %s", name)
		}
	}

	libraryName := filepath.Base(l.LibraryPath)
	p.Step("")
	p.Step("Next steps:")
	for i, step := range bindgen.NextSteps(crateName, libraryName) {
		p.Step("  %d. %s", i+1, step)
	}
}

// joinLanguages formats the language list for the spinner title.
func joinLanguages(languages []string) string {
	if len(languages) == 0 {
		return "no"
	}
	return strings.Join(languages, "+")
}
