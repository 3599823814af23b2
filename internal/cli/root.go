package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mepassa/mepassa-bindgen/internal/bindgen"
	"github.com/mepassa/mepassa-bindgen/internal/config"
	"github.com/mepassa/mepassa-bindgen/internal/layout"
	"github.com/mepassa/mepassa-bindgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "mepassa-bindgen",
	Short: "Generate foreign-language bindings for mepassa-core",
	Long: `mepassa-bindgen drives uniffi-bindgen to produce Swift (and other
language) bindings from the mepassa-core interface definition and its
compiled library.

It verifies the required artifacts exist, prefers a standalone
uniffi-bindgen executable, falls back to the cargo-built CLI, and lists
the generated files when done.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running the bare binary generates bindings, matching the original
	// one-shot script.
	RunE: runGenerate,
}

// Execute parses flags, wires dependencies, and runs the command tree.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mepassa-bindgen %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("project-root", "", "Rust workspace root (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable diagnostic logging to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().Int("timeout", 0, "Subprocess timeout in seconds (default from config)")

	rootCmd.PersistentPreRunE = setupDependencies

	registerGenerateFlags(rootCmd)
}

// setupDependencies loads the configuration and wires the composition
// root. A missing workspace is tolerated here: commands that need the
// layout resolve it themselves and fail with context.
func setupDependencies(cmd *cobra.Command, _ []string) error {
	startDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configRoot := getStringFlag(cmd, "project-root")
	if configRoot == "" {
		if l, err := layout.Resolve(startDir, layout.Overrides{}); err == nil {
			configRoot = l.ProjectRoot
		} else {
			configRoot = startDir
		}
	}

	cfg, err := config.Load(configRoot)
	if err != nil {
		return err
	}

	if getBoolFlag(cmd, "no-color") {
		cfg.NoColor = true
	}
	if getBoolFlag(cmd, "non-interactive") {
		cfg.NonInteractive = true
	}
	if v, err := cmd.Flags().GetInt("timeout"); err == nil && v > 0 {
		cfg.TimeoutSeconds = v
	}

	InitDependencies(cfg, getBoolFlag(cmd, "verbose"))
	return nil
}

// reportError prints err with any recovery guidance it carries.
func reportError(err error) {
	if deps == nil || deps.Printer == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	deps.Printer.Error("%v", err)

	var checkErr *bindgen.CheckError
	var genErr *bindgen.GenerateError
	switch {
	case errors.As(err, &checkErr) && checkErr.Guidance != "":
		deps.Printer.Muted("  %s", checkErr.Guidance)
	case errors.As(err, &genErr) && genErr.Guidance != "":
		deps.Printer.Muted("  %s", genErr.Guidance)
	}
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
