package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mepassa/mepassa-bindgen/internal/bindgen"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that everything needed for generation is in place",
	Long: `Check the preconditions for binding generation: the compiled core
library, the interface definition, and the generator executables.

Exits non-zero when a required artifact is missing.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor reports every precondition instead of stopping at the first
// failure, so the user sees the complete picture in one run.
func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg := deps.Config
	p := deps.Printer

	l, err := resolveLayout(cmd)
	if err != nil {
		return err
	}

	p.Title("mepassa-bindgen doctor")
	p.Step("Workspace: %s", l.ProjectRoot)
	p.Step("")

	failed := 0
	for _, c := range bindgen.Checks(l) {
		if _, err := os.Stat(c.Path); err != nil {
			p.Error("%s: missing (%s)", c.Label, c.Path)
			p.Muted("  %s", c.Guidance)
			failed++
			continue
		}
		p.Success("%s: %s", c.Label, c.Path)
	}

	// Tool availability: at least one strategy must be runnable.
	tools := 0
	for _, bin := range []string{cfg.Tools.UniffiBin, cfg.Tools.CargoBin} {
		if deps.Runner.LookPath(bin) {
			p.Success("%s on PATH", bin)
			tools++
		} else {
			p.Warning("%s not on PATH", bin)
		}
	}
	if tools == 0 {
		p.Error("no generator available")
		p.Muted("  install one: cargo install uniffi-bindgen")
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("doctor: %d problem(s) found", failed)
	}
	p.Step("")
	p.Success("ready to generate")
	return nil
}
