// pkg/aur/manager.go
package aur

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/runner"
)

// Manager installs packages from the AUR through a resolved helper.
// The helper is session state: the resolver sets it once per run, and an
// empty helper makes every install Unavailable rather than an error.
type Manager struct {
	run    runner.Runner
	logger zerolog.Logger
	helper string
}

// NewManager creates an AUR installer. helper may be empty when none has
// been resolved yet.
func NewManager(run runner.Runner, helper string) *Manager {
	return &Manager{
		run:    run,
		logger: logging.GetLogger("aur"),
		helper: helper,
	}
}

// SetHelper records the resolved helper binary for this run
func (m *Manager) SetHelper(helper string) {
	m.helper = helper
}

// Helper returns the resolved helper binary, or "" if none
func (m *Manager) Helper() string {
	return m.helper
}

// Source returns the source this installer covers
func (m *Manager) Source() core.Source {
	return core.SourceAUR
}

// Ready reports whether a helper has been resolved
func (m *Manager) Ready(ctx context.Context) bool {
	return m.helper != ""
}

// IsInstalled queries the local package database. AUR packages land in the
// same database pacman manages, so the query goes through pacman directly.
func (m *Manager) IsInstalled(ctx context.Context, id string) (bool, error) {
	_, err := m.run.Output(ctx, "pacman", "-Q", id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &core.Error{Op: "query local db", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
}

// IsAvailable asks the helper whether the AUR carries the package
func (m *Manager) IsAvailable(ctx context.Context, id string) (bool, error) {
	if m.helper == "" {
		return false, &core.Error{Op: "query aur", App: id, Err: core.ErrHelperUnavailable}
	}
	_, err := m.run.Output(ctx, m.helper, "-Si", id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &core.Error{Op: "query aur", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
}

// Install builds and installs a package through the helper. The helper
// invokes sudo itself where needed, so the command is never elevated.
func (m *Manager) Install(ctx context.Context, id string) core.InstallResult {
	res := core.InstallResult{App: id, Source: core.SourceAUR}

	if m.helper == "" {
		res.Status = core.StatusUnavailable
		return res
	}

	installed, err := m.IsInstalled(ctx, id)
	if err == nil && installed {
		res.Status = core.StatusAlreadyPresent
		return res
	}

	m.logger.Info().Str("package", id).Str("helper", m.helper).Msg("installing from AUR")
	if err := m.run.Run(ctx, m.helper, "-S", "--needed", "--noconfirm", id); err != nil {
		res.Status = core.StatusFailed
		res.Err = &core.Error{Op: "aur install error", App: id, Err: err}
		return res
	}

	res.Status = core.StatusInstalled
	return res
}
