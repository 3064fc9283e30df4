// pkg/pacman/constants.go
package pacman

const (
	// Binary is the pacman executable name
	Binary = "pacman"

	// DefaultSyncDir is where pacman keeps its sync databases.
	// Parsed directly when the live index query cannot run.
	DefaultSyncDir = "/var/lib/pacman/sync"
)

// Repository names
const (
	RepoCore     = "core"     // Critical system packages
	RepoExtra    = "extra"    // General application packages
	RepoMultilib = "multilib" // 32-bit compatibility libraries
)

// DefaultRepos lists the standard repositories enabled by default
var DefaultRepos = []string{
	RepoCore,
	RepoExtra,
}

// installArgs are the non-interactive install arguments. --needed keeps
// re-installs from touching packages that are already current.
var installArgs = []string{"-S", "--needed", "--noconfirm"}
