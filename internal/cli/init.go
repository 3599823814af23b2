package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mepassa/mepassa-bindgen/internal/config"
	"github.com/mepassa/mepassa-bindgen/internal/defs"
)

// ErrCancelled indicates the user aborted the configuration form.
var ErrCancelled = errors.New("init cancelled")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a " + defs.BindgenYAML + " configuration file",
	Long: `Create ` + defs.MepassaDir + `/` + defs.BindgenYAML + ` in the workspace root.

Runs an interactive form by default; with --non-interactive (or without
a TTY) it writes the compiled defaults, adjusted by flags.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("crate-name", "", "uniffi crate name (default: mepassa)")
	initCmd.Flags().StringArray("language", nil, "Binding language (repeatable; default: swift)")
	initCmd.Flags().String("out-dir", "", "Output directory for generated sources")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

// runInit collects the configuration and writes it to disk.
func runInit(cmd *cobra.Command, _ []string) error {
	l, err := resolveLayout(cmd)
	if err != nil {
		return err
	}

	path := config.Path(l.ProjectRoot)
	if _, err := os.Stat(path); err == nil && !getBoolFlag(cmd, "force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if v := getStringFlag(cmd, "crate-name"); v != "" {
		cfg.CrateName = v
	}
	if langs, err := cmd.Flags().GetStringArray("language"); err == nil && len(langs) > 0 {
		cfg.Languages = langs
	}
	if v := getStringFlag(cmd, "out-dir"); v != "" {
		cfg.Paths.OutDir = v
	}

	if !deps.Headless.IsHeadless() {
		if err := runInitForm(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(l.ProjectRoot, cfg); err != nil {
		return err
	}

	deps.Printer.Success("wrote %s", path)
	return nil
}

// runInitForm edits cfg in place through a huh form.
func runInitForm(cfg *config.Config) error {
	languages := cfg.Languages

	langOptions := make([]huh.Option[string], len(config.SupportedLanguages))
	for i, lang := range config.SupportedLanguages {
		langOptions[i] = huh.NewOption(lang, lang)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Crate name").
				Description("The uniffi crate name of the core library").
				Value(&cfg.CrateName).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return errors.New("crate name must not be empty")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Binding languages").
				Options(langOptions...).
				Value(&languages),
			huh.NewInput().
				Title("Output directory").
				Description("Empty uses ios/MePassa/Generated under the workspace root").
				Value(&cfg.Paths.OutDir),
		),
	).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("init form: %w", err)
	}

	if len(languages) > 0 {
		cfg.Languages = languages
	}
	return nil
}
