// pkg/runner/exec.go
package runner

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/logging"
)

// ExecRunner runs commands on the host, one at a time, each awaited to
// completion. Commands named in privileged are prefixed with sudo unless
// the process already runs as root.
type ExecRunner struct {
	logger zerolog.Logger
	asRoot bool
}

// privileged lists commands that mutate system state and need root
var privileged = map[string]bool{
	"pacman":    true,
	"flatpak":   true,
	"systemctl": true,
	"sh":        true,
}

// NewExecRunner creates a runner that executes commands for real
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("runner"),
		asRoot: os.Geteuid() == 0,
	}
}

// Run executes a command with stdout/stderr attached to the terminal
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.RunIn(ctx, "", name, args...)
}

// RunIn executes a command in the given working directory
func (r *ExecRunner) RunIn(ctx context.Context, dir, name string, args ...string) error {
	name, args = r.elevate(name, args)
	r.logger.Debug().Str("cmd", name+" "+strings.Join(args, " ")).Str("dir", dir).Msg("exec")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes a read-only query and returns its captured stdout.
// Queries never get elevated.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.logger.Trace().Str("cmd", name+" "+strings.Join(args, " ")).Msg("query")

	out, err := exec.CommandContext(ctx, name, args...).Output()
	return strings.TrimRight(string(out), "\n"), err
}

// LookPath reports whether a binary is available in PATH
func (r *ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (r *ExecRunner) elevate(name string, args []string) (string, []string) {
	if r.asRoot || !privileged[name] {
		return name, args
	}
	return "sudo", append([]string{name}, args...)
}
