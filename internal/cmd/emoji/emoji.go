// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across commands.
package emoji

const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents failures or detected defects.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	Warning = "!"

	// Unknown represents unknown or indeterminate states.
	Unknown = "?"
)
