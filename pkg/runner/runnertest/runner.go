// pkg/runner/runnertest/runner.go
package runnertest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ExitError mimics a non-zero child exit for scripted responses.
// It satisfies the runner.ExitCode contract without spawning a process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode lets runner.ExitCode recover the scripted status
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Response is a scripted reply for a command prefix
type Response struct {
	Stdout string
	Err    error
}

// Recorder is a scripted runner.Runner for tests. Commands are matched by
// longest prefix against the joined argv; unmatched commands succeed with
// empty output. Every invocation is recorded.
type Recorder struct {
	mu        sync.Mutex
	responses map[string]Response
	binaries  map[string]bool
	Runs      []string // mutating commands, joined argv
	Queries   []string // read-only commands, joined argv
}

// New creates an empty Recorder
func New() *Recorder {
	return &Recorder{
		responses: make(map[string]Response),
		binaries:  make(map[string]bool),
	}
}

// Script registers a response for commands starting with prefix
func (r *Recorder) Script(prefix string, resp Response) *Recorder {
	r.responses[prefix] = resp
	return r
}

// Fail registers a non-zero exit for commands starting with prefix
func (r *Recorder) Fail(prefix string, code int) *Recorder {
	return r.Script(prefix, Response{Err: &ExitError{Code: code}})
}

// Binary marks a binary as present for LookPath
func (r *Recorder) Binary(names ...string) *Recorder {
	for _, n := range names {
		r.binaries[n] = true
	}
	return r
}

func (r *Recorder) lookup(line string) Response {
	var best string
	for prefix := range r.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return Response{}
	}
	return r.responses[best]
}

// Run records a mutating command and returns its scripted error
func (r *Recorder) Run(ctx context.Context, name string, args ...string) error {
	return r.RunIn(ctx, "", name, args...)
}

// RunIn records a mutating command and returns its scripted error
func (r *Recorder) RunIn(ctx context.Context, dir, name string, args ...string) error {
	line := join(name, args)
	r.mu.Lock()
	r.Runs = append(r.Runs, line)
	r.mu.Unlock()
	return r.lookup(line).Err
}

// Output records a query and returns its scripted stdout and error
func (r *Recorder) Output(ctx context.Context, name string, args ...string) (string, error) {
	line := join(name, args)
	r.mu.Lock()
	r.Queries = append(r.Queries, line)
	r.mu.Unlock()
	resp := r.lookup(line)
	return resp.Stdout, resp.Err
}

// LookPath reports a binary registered with Binary
func (r *Recorder) LookPath(name string) bool {
	return r.binaries[name]
}

// RunMatching returns recorded mutating commands starting with prefix
func (r *Recorder) RunMatching(prefix string) []string {
	var out []string
	for _, line := range r.Runs {
		if strings.HasPrefix(line, prefix) {
			out = append(out, line)
		}
	}
	return out
}

func join(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
