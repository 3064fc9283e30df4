// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec indicates an AppSpec that violates the caller contract
	ErrInvalidSpec = errors.New("invalid app spec")

	// ErrPrecondition indicates a fatal environment problem (wrong distro,
	// no sudo, no network). The only error class that aborts a run.
	ErrPrecondition = errors.New("precondition failed")

	// ErrProbeFailed indicates a query that could not be answered, which is
	// distinct from a negative answer. A network hiccup during an
	// availability check must not be read as "package does not exist".
	ErrProbeFailed = errors.New("probe failed")

	// ErrHelperUnavailable indicates no AUR helper is usable for this run
	ErrHelperUnavailable = errors.New("no AUR helper available")

	// ErrRemoteSetup indicates the Flatpak remote could not be registered
	ErrRemoteSetup = errors.New("remote setup error")
)

// Error wraps an error with the failing operation and application
type Error struct {
	Op  string // Operation that failed
	App string // Application name if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.App != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.App, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
