// pkg/runner/dryrun.go
package runner

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/logging"
)

// DryRunner suppresses mutating commands, printing what would run instead.
// Read-only queries are delegated to the wrapped runner so probes keep
// answering and a dry run reports what a real run would do.
type DryRunner struct {
	real   Runner
	logger zerolog.Logger
}

// NewDryRunner wraps a real runner in dry-run behavior
func NewDryRunner(real Runner) *DryRunner {
	return &DryRunner{
		real:   real,
		logger: logging.GetLogger("dry-run"),
	}
}

// Run prints the command without executing it
func (r *DryRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.RunIn(ctx, "", name, args...)
}

// RunIn prints the command without executing it
func (r *DryRunner) RunIn(ctx context.Context, dir, name string, args ...string) error {
	line := name + " " + strings.Join(args, " ")
	if dir != "" {
		line = "cd " + dir + " && " + line
	}
	pterm.Info.Println("would run: " + line)
	r.logger.Info().Str("cmd", line).Msg("skipped (dry run)")
	return nil
}

// Output delegates to the real runner; queries have no side effects
func (r *DryRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.real.Output(ctx, name, args...)
}

// LookPath delegates to the real runner
func (r *DryRunner) LookPath(name string) bool {
	return r.real.LookPath(name)
}
