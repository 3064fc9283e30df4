// pkg/pacman/manager.go
package pacman

import (
	"context"
	"fmt"
	"strings"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/runner"
)

// Options configures the pacman manager
type Options struct {
	SyncDir string   // defaults to /var/lib/pacman/sync
	Repos   []string // repos consulted for offline probes
}

// NewManager creates a repo installer backed by the pacman binary
func NewManager(run runner.Runner, opts *Options) *Manager {
	if opts == nil {
		opts = &Options{}
	}
	syncDir := opts.SyncDir
	if syncDir == "" {
		syncDir = DefaultSyncDir
	}
	repos := opts.Repos
	if len(repos) == 0 {
		repos = DefaultRepos
	}

	return &Manager{
		run:     run,
		logger:  logging.GetLogger("pacman"),
		syncDir: syncDir,
		repos:   repos,
	}
}

// Source returns the source this installer covers
func (m *Manager) Source() core.Source {
	return core.SourceRepo
}

// Ready reports whether pacman is usable on this system
func (m *Manager) Ready(ctx context.Context) bool {
	return m.run.LookPath(Binary)
}

// IsInstalled queries the local package database. Exit 1 means "not
// installed"; anything else that keeps pacman from answering is a probe
// failure, not a negative.
func (m *Manager) IsInstalled(ctx context.Context, id string) (bool, error) {
	_, err := m.run.Output(ctx, Binary, "-Q", id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &core.Error{Op: "query local db", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}
}

// IsAvailable queries the package index without installing. When the live
// query cannot run at all, the local sync databases answer instead.
func (m *Manager) IsAvailable(ctx context.Context, id string) (bool, error) {
	_, err := m.run.Output(ctx, Binary, "-Si", id)
	switch runner.ExitCode(err) {
	case 0:
		return true, nil
	case 1:
		return false, nil
	}

	m.logger.Warn().Err(err).Str("package", id).Msg("live index query failed, trying local sync databases")

	if m.offline == nil {
		idx, idxErr := loadSyncIndex(m.syncDir, m.repos)
		if idxErr != nil {
			return false, &core.Error{Op: "query index", App: id, Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
		}
		m.offline = idx
	}
	return m.offline.has(id), nil
}

// Install installs a package non-interactively through pacman
func (m *Manager) Install(ctx context.Context, id string) core.InstallResult {
	res := core.InstallResult{App: id, Source: core.SourceRepo}

	installed, err := m.IsInstalled(ctx, id)
	if err == nil && installed {
		res.Status = core.StatusAlreadyPresent
		return res
	}

	m.logger.Info().Str("package", id).Msg("installing from official repositories")
	if err := m.run.Run(ctx, Binary, append(installArgs, id)...); err != nil {
		res.Status = core.StatusFailed
		res.Err = &core.Error{Op: "repo install error", App: id, Err: err}
		return res
	}

	res.Status = core.StatusInstalled
	return res
}

// InstallAll installs a plain repo package list in one pacman invocation
func (m *Manager) InstallAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	m.logger.Info().Strs("packages", ids).Msg("installing package set")
	if err := m.run.Run(ctx, Binary, append(installArgs, ids...)...); err != nil {
		return &core.Error{Op: "repo install error", App: strings.Join(ids, " "), Err: err}
	}
	return nil
}

// Upgrade performs a full system upgrade
func (m *Manager) Upgrade(ctx context.Context) error {
	m.logger.Info().Msg("running full system upgrade")
	if err := m.run.Run(ctx, Binary, "-Syu", "--noconfirm"); err != nil {
		return &core.Error{Op: "system upgrade", Err: err}
	}
	return nil
}

// Refresh re-syncs the package databases (after enabling multilib)
func (m *Manager) Refresh(ctx context.Context) error {
	if err := m.run.Run(ctx, Binary, "-Sy"); err != nil {
		return &core.Error{Op: "database refresh", Err: err}
	}
	return nil
}

// RemoveOrphans removes packages that nothing depends on anymore.
// No orphans is the common case and not an error.
func (m *Manager) RemoveOrphans(ctx context.Context) error {
	out, err := m.run.Output(ctx, Binary, "-Qtdq")
	if runner.ExitCode(err) == 1 || strings.TrimSpace(out) == "" {
		m.logger.Debug().Msg("no orphaned packages")
		return nil
	}
	if err != nil {
		return &core.Error{Op: "query orphans", Err: fmt.Errorf("%w: %v", core.ErrProbeFailed, err)}
	}

	orphans := strings.Fields(out)
	m.logger.Info().Strs("packages", orphans).Msg("removing orphaned packages")
	if err := m.run.Run(ctx, Binary, append([]string{"-Rns", "--noconfirm"}, orphans...)...); err != nil {
		return &core.Error{Op: "remove orphans", Err: err}
	}
	return nil
}
