// pkg/system/types.go
package system

import (
	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/pacman"
	"github.com/archup-dev/archup/pkg/runner"
)

// Manager performs the system-level setup steps around package
// installation: preflight checks, multilib, GPU drivers, services.
type Manager struct {
	run    runner.Runner
	pacman *pacman.Manager
	logger zerolog.Logger
	etcDir string // overridable for tests
}

// NewManager creates a system manager
func NewManager(run runner.Runner, pm *pacman.Manager) *Manager {
	return &Manager{
		run:    run,
		pacman: pm,
		logger: logging.GetLogger("system"),
		etcDir: "/etc",
	}
}
