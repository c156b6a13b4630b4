// Package errors defines the error taxonomy of the phantom converter.
package errors

import (
	"fmt"
)

// MissingLookupSource signals that the organ list source is absent or
// contains no data rows. The caller decides whether to abort or fall
// back to an all-zero table.
type MissingLookupSource struct {
	Path string
}

// Error ...
func (e MissingLookupSource) Error() string {
	return fmt.Sprintf("organ list source %q is missing or empty", e.Path)
}

// CardinalityMismatch signals that the number of organ tags read does
// not match the voxel count implied by the grid dimensions.
type CardinalityMismatch struct {
	Actual   int
	Expected int
}

// Error ...
func (e CardinalityMismatch) Error() string {
	return fmt.Sprintf(
		"number of voxels read (%d) does not match expected total (%d)",
		e.Actual, e.Expected,
	)
}

// InvalidConfiguration signals a run configuration that cannot produce
// a meaningful phantom (non-positive dimensions, bad format name, ...).
type InvalidConfiguration struct {
	Reason string
}

// Error ...
func (e InvalidConfiguration) Error() string {
	return "invalid configuration: " + e.Reason
}

// NewInvalidConfiguration ...
func NewInvalidConfiguration(format string, values ...interface{}) InvalidConfiguration {
	return InvalidConfiguration{Reason: fmt.Sprintf(format, values...)}
}
