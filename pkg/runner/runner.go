// pkg/runner/runner.go
package runner

import (
	"context"
	"errors"
)

// Runner is the single point of side effect for external commands.
// Run and RunIn are mutating invocations; Output is a read-only query.
// The distinction is what lets dry-run suppress mutations while probes
// keep answering.
type Runner interface {
	// Run executes a command, streaming its output to the user
	Run(ctx context.Context, name string, args ...string) error

	// RunIn is Run with a working directory (used for makepkg builds)
	RunIn(ctx context.Context, dir, name string, args ...string) error

	// Output executes a read-only query and returns captured stdout
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports whether a binary is available in PATH
	LookPath(name string) bool
}

// ExitCode recovers the child process exit status from a Run/Output error.
// Returns -1 when the process never ran (spawn failure, context cancelled),
// which callers use to tell "command said no" from "could not ask".
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}
