// pkg/aur/helper.go
package aur

import (
	"context"
	"os"
	"path/filepath"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/logging"
	"github.com/archup-dev/archup/pkg/runner"
)

// DetectHelper returns the first AUR helper binary present in PATH
func DetectHelper(run runner.Runner) (string, bool) {
	for _, name := range HelperNames {
		if run.LookPath(name) {
			return name, true
		}
	}
	return "", false
}

// Bootstrap builds and installs the default AUR helper from its AUR build
// recipe: install the build toolchain, clone the recipe, makepkg it.
// makepkg refuses to run as root, so the build itself is never elevated.
func Bootstrap(ctx context.Context, run runner.Runner) error {
	logger := logging.GetLogger("aur")
	logger.Info().Str("helper", BootstrapHelper).Msg("bootstrapping AUR helper")

	if err := run.Run(ctx, "pacman", append([]string{"-S", "--needed", "--noconfirm"}, bootstrapDeps...)...); err != nil {
		return &core.Error{Op: "install build toolchain", Err: err}
	}

	buildDir, err := os.MkdirTemp("", "archup-"+BootstrapHelper+"-*")
	if err != nil {
		return &core.Error{Op: "create build directory", Err: err}
	}
	defer os.RemoveAll(buildDir)

	cloneDir := filepath.Join(buildDir, BootstrapHelper)
	if err := run.Run(ctx, "git", "clone", BootstrapCloneURL, cloneDir); err != nil {
		return &core.Error{Op: "clone build recipe", App: BootstrapHelper, Err: err}
	}

	if err := run.RunIn(ctx, cloneDir, "makepkg", "-si", "--noconfirm"); err != nil {
		return &core.Error{Op: "build helper", App: BootstrapHelper, Err: err}
	}

	return nil
}
