package bindgen

import (
	"os"
	"slices"

	"github.com/iancoleman/strcase"
)

// ListGenerated returns the file names in outDir, sorted
// lexicographically. A missing or unreadable directory yields an empty
// list, never an error: the listing is purely informational.
func ListGenerated(outDir string) []string {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names
}

// SwiftModuleName derives the Swift module name from the uniffi crate
// name (snake_case crate -> CamelCase module).
func SwiftModuleName(crateName string) string {
	return strcase.ToCamel(crateName)
}

// NextSteps returns the post-generation instructions for wiring the
// bindings into the iOS app.
func NextSteps(crateName, libraryName string) []string {
	return []string{
		"Add the generated files to the Xcode project",
		"Add " + libraryName + " to 'Frameworks and Libraries'",
		"Import the module in Swift: import " + crateName,
	}
}
