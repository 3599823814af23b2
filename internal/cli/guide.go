package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mepassa/mepassa-bindgen/internal/bindgen"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show how to wire the generated bindings into the iOS app",
	Args:  cobra.NoArgs,
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

// guideMarkdown builds the integration guide for the configured crate.
func guideMarkdown(crateName string) string {
	module := bindgen.SwiftModuleName(crateName)
	return fmt.Sprintf(`# Integrating the %s bindings

The generator writes three kinds of files: the Swift wrapper, the C
header, and the module map.

## Next steps

1. Add the generated files to the Xcode project.
2. Add the compiled core library to **Frameworks and Libraries**.
3. Import the module in Swift: `+"`import %s`"+`

## Regenerating

Re-run `+"`mepassa-bindgen generate`"+` after any change to the UDL file
or the exported Rust API. Rebuild the core first when the library
itself changed:

    cd core && cargo build --release
`, module, crateName)
}

// runGuide renders the guide: glamour markdown on a TTY, plain text
// otherwise.
func runGuide(cmd *cobra.Command, _ []string) error {
	md := guideMarkdown(deps.Config.CrateName)

	if deps.Headless.IsHeadless() || deps.Config.NoColor {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
