// errors.go
package archup

import "github.com/archup-dev/archup/pkg/core"

// Re-exported error classes; see pkg/core for the taxonomy.
var (
	// ErrInvalidSpec indicates an AppSpec that violates the caller contract
	ErrInvalidSpec = core.ErrInvalidSpec

	// ErrPrecondition indicates a fatal environment problem
	ErrPrecondition = core.ErrPrecondition

	// ErrProbeFailed indicates a query that could not be answered
	ErrProbeFailed = core.ErrProbeFailed

	// ErrHelperUnavailable indicates no AUR helper is usable for this run
	ErrHelperUnavailable = core.ErrHelperUnavailable

	// ErrRemoteSetup indicates the Flatpak remote could not be registered
	ErrRemoteSetup = core.ErrRemoteSetup
)

// Error wraps an error with the failing operation and application
type Error = core.Error
