// pkg/flatpak/manager.go
package flatpak

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/runner"
)

// Manager installs sandboxed applications from Flathub
type Manager struct {
	run    runner.Runner
	logger zerolog.Logger

	// remoteEnsured caches the add-if-absent remote check for the run
	remoteEnsured bool
}

// NewManager creates a Flatpak installer
func NewManager(run runner.Runner) *Manager {
	return &Manager{
		run:    run,
		logger: logging.GetLogger("flatpak"),
	}
}

// Source returns the source this installer covers
func (m *Manager) Source() core.Source {
	return core.SourceFlatpak
}

// Ready reports whether the flatpak binary is present
func (m *Manager) Ready(ctx context.Context) bool {
	return m.run.LookPath(Binary)
}

// IsInstalled queries the local flatpak installation for an app id
func (m *Manager) IsInstalled(ctx context.Context, id string) (bool, error) {
	_, err := m.run.Output(ctx, Binary, "info", id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &core.Error{Op: "query flatpak", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
}

// IsAvailable queries whether Flathub carries the app id
func (m *Manager) IsAvailable(ctx context.Context, id string) (bool, error) {
	_, err := m.run.Output(ctx, Binary, "remote-info", RemoteName, id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &core.Error{Op: "query remote", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
}

// EnsureRemote registers the Flathub remote if it is not already known.
// Idempotent; checked at most once per run.
func (m *Manager) EnsureRemote(ctx context.Context) error {
	if m.remoteEnsured {
		return nil
	}

	out, err := m.run.Output(ctx, Binary, "remotes", "--columns=name")
	if err == nil && containsFold(parseColumn(out), RemoteName) {
		m.remoteEnsured = true
		return nil
	}

	m.logger.Info().Str("remote", RemoteName).Msg("registering flatpak remote")
	if err := m.run.Run(ctx, Binary, "remote-add", "--if-not-exists", RemoteName, RemoteURL); err != nil {
		return &core.Error{Op: "remote setup error", Err: fmt.Errorf("%w: %v", core.ErrRemoteSetup, err)}
	}

	m.remoteEnsured = true
	return nil
}

// Install installs an app from Flathub, registering the remote first
func (m *Manager) Install(ctx context.Context, id string) core.InstallResult {
	res := core.InstallResult{App: id, Source: core.SourceFlatpak}

	installed, err := m.IsInstalled(ctx, id)
	if err == nil && installed {
		res.Status = core.StatusAlreadyPresent
		return res
	}

	if err := m.EnsureRemote(ctx); err != nil {
		res.Status = core.StatusFailed
		res.Err = err
		return res
	}

	m.logger.Info().Str("app", id).Msg("installing from flathub")
	if err := m.run.Run(ctx, Binary, "install", "-y", "--noninteractive", RemoteName, id); err != nil {
		res.Status = core.StatusFailed
		res.Err = &core.Error{Op: "flatpak install error", App: id, Err: err}
		return res
	}

	res.Status = core.StatusInstalled
	return res
}
