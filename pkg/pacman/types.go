// pkg/pacman/types.go
package pacman

import (
	"github.com/rs/zerolog"

	"github.com/archup-dev/archup/pkg/runner"
)

// Manager installs packages from the official repositories through pacman
type Manager struct {
	run     runner.Runner
	logger  zerolog.Logger
	syncDir string
	repos   []string
	offline *syncIndex // lazily built from the local sync databases
}

// PackageInfo contains metadata from the 'desc' file in a sync database
type PackageInfo struct {
	Name         string
	Version      string
	Base         string
	Description  string
	URL          string
	Architecture string
	Filename     string
	Depends      []string
	Provides     []string
	Repository   string // Which repo this came from (core, extra, multilib)
}
