// archup.go
package archup

import (
	"context"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/resolver"
	"github.com/archup-dev/archup/pkg/runner"
	"github.com/archup-dev/archup/pkg/system"
)

// Re-export core types for convenience
type (
	AppSpec       = core.AppSpec
	Config        = core.Config
	InstallResult = core.InstallResult
	ResultStatus  = core.ResultStatus
	Source        = core.Source
	ConfirmFunc   = resolver.ConfirmFunc
)

// Re-export core constants
const (
	SourceRepo    = core.SourceRepo
	SourceAUR     = core.SourceAUR
	SourceFlatpak = core.SourceFlatpak

	StatusAlreadyPresent = core.StatusAlreadyPresent
	StatusInstalled      = core.StatusInstalled
	StatusUnavailable    = core.StatusUnavailable
	StatusFailed         = core.StatusFailed
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}

// Session ties one run together: a command runner honoring dry-run, the
// priority resolver with its run-scoped state, and the system setup steps.
type Session struct {
	cfg      *core.Config
	run      runner.Runner
	resolver *resolver.Session
	system   *system.Manager
}

// NewSession creates a session from the run configuration. confirm may be
// nil, in which case every prompt auto-accepts.
func NewSession(cfg *Config, confirm ConfirmFunc) *Session {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if cfg.Yes && confirm == nil {
		confirm = func(string) bool { return true }
	}

	var run runner.Runner = runner.NewExecRunner()
	if cfg.DryRun {
		run = runner.NewDryRunner(run)
	}

	res := resolver.NewSession(cfg, run, confirm)

	return &Session{
		cfg:      cfg,
		run:      run,
		resolver: res,
		system:   system.NewManager(run, res.Pacman()),
	}
}

// Config returns the run configuration
func (s *Session) Config() *Config {
	return s.cfg
}

// Runner returns the session's command runner
func (s *Session) Runner() runner.Runner {
	return s.run
}

// Resolver returns the priority resolver
func (s *Session) Resolver() *resolver.Session {
	return s.resolver
}

// System returns the system setup manager
func (s *Session) System() *system.Manager {
	return s.system
}

// Resolve installs one app via priority fallback
func (s *Session) Resolve(ctx context.Context, spec AppSpec) InstallResult {
	return s.resolver.Resolve(ctx, spec)
}

// ResolveAll installs apps sequentially, one result per spec
func (s *Session) ResolveAll(ctx context.Context, specs []AppSpec) []InstallResult {
	return s.resolver.ResolveAll(ctx, specs)
}

// Preflight runs the read-only environment checks
func (s *Session) Preflight(ctx context.Context) ([]system.Check, error) {
	return s.system.Preflight(ctx)
}
