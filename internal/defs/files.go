package defs

// Common file and directory names used across the project.
const (
	// MepassaDir is the per-project directory holding tool configuration.
	MepassaDir = ".mepassa"

	// BindgenYAML is the binding generator configuration file under MepassaDir.
	BindgenYAML = "bindgen.yaml"

	// CargoToml marks the root of the Rust workspace.
	CargoToml = "Cargo.toml"

	// CoreDirName is the crate directory of mepassa-core inside the workspace.
	CoreDirName = "core"

	// UDLFileName is the uniffi interface definition of the core crate.
	UDLFileName = "mepassa.udl"

	// LibBaseName is the compiled library name without platform prefix/suffix.
	LibBaseName = "mepassa_core"
)

// Default tool executables. Overridable through configuration.
const (
	UniffiBin = "uniffi-bindgen"
	CargoBin  = "cargo"
)
