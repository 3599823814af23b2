// Package bindgen drives uniffi-bindgen to produce foreign-language
// bindings for the mepassa-core crate. It checks that the required
// artifacts exist, runs an ordered list of generation strategies, and
// reports the generated files.
package bindgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding generation.
var (
	// ErrMissingLibrary indicates the compiled core library was not found.
	ErrMissingLibrary = errors.New("bindgen: compiled library not found")

	// ErrMissingUDL indicates the interface definition file was not found.
	ErrMissingUDL = errors.New("bindgen: interface definition not found")

	// ErrNoStrategy indicates no generation strategy was available.
	ErrNoStrategy = errors.New("bindgen: no generation strategy available")
)

// CheckError is a failed precondition with recovery guidance for the user.
type CheckError struct {
	Path     string
	Guidance string
	Wrapped  error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("%v: %s", e.Wrapped, e.Path)
}

// Unwrap returns the underlying sentinel error.
func (e *CheckError) Unwrap() error {
	return e.Wrapped
}

// GenerateError is a failed generation attempt. Stderr carries the
// captured error stream of the external process, when there was one.
type GenerateError struct {
	Strategy string
	Stderr   string
	Guidance string
	Wrapped  error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("bindgen: %s failed: %v\n%s", e.Strategy, e.Wrapped, e.Stderr)
	}
	return fmt.Sprintf("bindgen: %s failed: %v", e.Strategy, e.Wrapped)
}

// Unwrap returns the underlying error.
func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
