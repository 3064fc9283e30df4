// pkg/resolver/resolver.go
package resolver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/aur"
	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/flatpak"
	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/pacman"
	"github.com/archup-dev/archup/pkg/runner"
)

// ConfirmFunc asks the user a yes/no question. Under --yes or a
// non-interactive stdin the CLI supplies one that always accepts.
type ConfirmFunc func(prompt string) bool

// Session resolves app specs against the sources for one run. It owns the
// run-scoped AUR helper resolution result, cached including its negative
// outcome so the user is prompted at most once.
type Session struct {
	cfg     *core.Config
	run     runner.Runner
	confirm ConfirmFunc
	logger  zerolog.Logger

	pacman  *pacman.Manager
	aur     *aur.Manager
	flatpak *flatpak.Manager

	installers map[core.Source]core.Installer

	// aurResolved flips when helper resolution has been attempted,
	// successfully or not
	aurResolved bool
}

// NewSession builds a resolver session over the three source installers
func NewSession(cfg *core.Config, run runner.Runner, confirm ConfirmFunc) *Session {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}

	pm := pacman.NewManager(run, &pacman.Options{Repos: cfg.Repos})
	am := aur.NewManager(run, "")
	fm := flatpak.NewManager(run)

	return &Session{
		cfg:     cfg,
		run:     run,
		confirm: confirm,
		logger:  logging.GetLogger("resolver"),
		pacman:  pm,
		aur:     am,
		flatpak: fm,
		installers: map[core.Source]core.Installer{
			core.SourceRepo:    pm,
			core.SourceAUR:     am,
			core.SourceFlatpak: fm,
		},
	}
}

// Pacman exposes the repo manager for system-level steps (upgrade,
// multilib refresh, orphan removal)
func (s *Session) Pacman() *pacman.Manager {
	return s.pacman
}

// Flatpak exposes the flatpak manager
func (s *Session) Flatpak() *flatpak.Manager {
	return s.flatpak
}

// AURHelper returns the helper resolved for this run, or "" if none
func (s *Session) AURHelper() string {
	return s.aur.Helper()
}

// Resolve attempts the spec's sources in priority order and stops at the
// first that yields anything other than Unavailable. Absent ids and
// sources disabled by configuration are skipped identically. If every
// listed source is unavailable the overall result is Unavailable, which
// is a warning for the caller, not a fatal error.
func (s *Session) Resolve(ctx context.Context, spec core.AppSpec) core.InstallResult {
	if err := spec.Validate(); err != nil {
		return core.InstallResult{App: spec.Name, Status: core.StatusFailed, Err: err}
	}

	for _, src := range core.Sources() {
		id := spec.ID(src)
		if id == "" || !s.cfg.SourceEnabled(src) {
			continue
		}

		if src == core.SourceAUR && !s.ensureHelper(ctx) {
			s.logger.Debug().Str("app", spec.Name).Msg("aur unavailable for this run, skipping")
			continue
		}

		inst := s.installers[src]
		if !inst.Ready(ctx) {
			continue
		}

		installed, err := inst.IsInstalled(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("app", spec.Name).Stringer("source", src).Msg("cannot confirm install state")
		} else if installed {
			return core.InstallResult{App: spec.Name, Status: core.StatusAlreadyPresent, Source: src}
		}

		avail, err := inst.IsAvailable(ctx, id)
		if err != nil {
			// Cannot confirm is not "does not exist"; move on
			s.logger.Warn().Err(err).Str("app", spec.Name).Stringer("source", src).Msg("availability probe failed")
			continue
		}
		if !avail {
			continue
		}

		res := inst.Install(ctx, id)
		res.App = spec.Name
		if res.Status == core.StatusUnavailable {
			continue
		}
		return res
	}

	s.logger.Warn().Str("app", spec.Name).Msg("no source had this package")
	return core.InstallResult{App: spec.Name, Status: core.StatusUnavailable}
}

// ResolveAll resolves specs sequentially. Per-app failures do not stop the
// run; each spec gets exactly one result.
func (s *Session) ResolveAll(ctx context.Context, specs []core.AppSpec) []core.InstallResult {
	results := make([]core.InstallResult, 0, len(specs))
	for _, spec := range specs {
		results = append(results, s.Resolve(ctx, spec))
	}
	return results
}

// ensureHelper resolves the AUR helper at most once per run. When no
// helper is present the user may approve a bootstrap build; declining or
// a failed build caches the negative result for the rest of the run.
func (s *Session) ensureHelper(ctx context.Context) bool {
	if s.aurResolved {
		return s.aur.Helper() != ""
	}
	s.aurResolved = true

	if helper, ok := aur.DetectHelper(s.run); ok {
		s.logger.Debug().Str("helper", helper).Msg("aur helper detected")
		s.aur.SetHelper(helper)
		return true
	}

	if !s.confirm("No AUR helper found. Build and install " + aur.BootstrapHelper + " now?") {
		s.logger.Warn().Msg("aur helper bootstrap declined, AUR disabled for this run")
		return false
	}

	if err := aur.Bootstrap(ctx, s.run); err != nil {
		s.logger.Error().Err(err).Msg("aur helper bootstrap failed, AUR disabled for this run")
		return false
	}

	if helper, ok := aur.DetectHelper(s.run); ok {
		s.aur.SetHelper(helper)
		return true
	}

	// Under dry-run the bootstrap is only printed, so the re-probe cannot
	// see a binary; report what a real run would have.
	if s.cfg.DryRun {
		s.aur.SetHelper(aur.BootstrapHelper)
		return true
	}

	s.logger.Error().Msg("aur helper still missing after bootstrap")
	return false
}
