// pkg/aur/constants.go
package aur

// Helper binaries, in preference order
var HelperNames = []string{"paru", "yay"}

const (
	// BootstrapHelper is the helper built from source when none is present
	BootstrapHelper = "paru"

	// BootstrapCloneURL is the AUR build recipe for the bootstrap helper
	BootstrapCloneURL = "https://aur.archlinux.org/paru.git"
)

// bootstrapDeps are needed to build any AUR package
var bootstrapDeps = []string{"base-devel", "git"}
