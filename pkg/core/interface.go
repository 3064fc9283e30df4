// pkg/core/interface.go
package core

import "context"

// Installer defines the common interface for all package sources
type Installer interface {
	// Source returns the source this installer covers
	Source() Source

	// Ready reports whether the source is usable on this system at all
	// (binary present, helper resolved). Not a per-package check.
	Ready(ctx context.Context) bool

	// IsInstalled queries the local package state for an id.
	// An ErrProbeFailed error means the question could not be answered.
	IsInstalled(ctx context.Context, id string) (bool, error)

	// IsAvailable queries whether the source carries the id, without
	// installing anything.
	IsAvailable(ctx context.Context, id string) (bool, error)

	// Install installs the id. Idempotent: an id that is already
	// installed yields StatusAlreadyPresent and no install commands.
	Install(ctx context.Context, id string) InstallResult
}
