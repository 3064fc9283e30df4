// pkg/core/app.go
package core

import "fmt"

// Source identifies where a package can be installed from.
// The declaration order is the priority order: repo first, AUR second,
// Flatpak last.
type Source int

const (
	SourceRepo Source = iota
	SourceAUR
	SourceFlatpak
)

// Sources returns all sources in priority order
func Sources() []Source {
	return []Source{SourceRepo, SourceAUR, SourceFlatpak}
}

// String returns the human-readable source name
func (s Source) String() string {
	switch s {
	case SourceRepo:
		return "repo"
	case SourceAUR:
		return "aur"
	case SourceFlatpak:
		return "flatpak"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// AppSpec describes a logical application and its candidate identifiers,
// one per source. Ids left empty are skipped during resolution.
type AppSpec struct {
	Name    string `toml:"name"`
	Repo    string `toml:"repo,omitempty"`
	AUR     string `toml:"aur,omitempty"`
	Flatpak string `toml:"flatpak,omitempty"`
}

// Validate checks the AppSpec contract: at least one id must be set.
func (a AppSpec) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("app spec: %w: missing name", ErrInvalidSpec)
	}
	if a.Repo == "" && a.AUR == "" && a.Flatpak == "" {
		return fmt.Errorf("app spec %q: %w: no source ids", a.Name, ErrInvalidSpec)
	}
	return nil
}

// ID returns the identifier for the given source, or "" if none is set.
func (a AppSpec) ID(s Source) string {
	switch s {
	case SourceRepo:
		return a.Repo
	case SourceAUR:
		return a.AUR
	case SourceFlatpak:
		return a.Flatpak
	}
	return ""
}

// ResultStatus is the outcome class of a single install attempt
type ResultStatus int

const (
	// StatusAlreadyPresent means the package was installed before this run
	StatusAlreadyPresent ResultStatus = iota
	// StatusInstalled means this run installed the package
	StatusInstalled
	// StatusUnavailable means no consulted source carried the package
	StatusUnavailable
	// StatusFailed means an install command ran and failed
	StatusFailed
)

// String returns the human-readable status name
func (s ResultStatus) String() string {
	switch s {
	case StatusAlreadyPresent:
		return "already present"
	case StatusInstalled:
		return "installed"
	case StatusUnavailable:
		return "unavailable"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// InstallResult is the immutable outcome of resolving one AppSpec.
// Source is only meaningful for StatusAlreadyPresent and StatusInstalled;
// Err is only set for StatusFailed.
type InstallResult struct {
	App    string
	Status ResultStatus
	Source Source
	Err    error
}

// OK reports whether the result ends with the package on the system
func (r InstallResult) OK() bool {
	return r.Status == StatusAlreadyPresent || r.Status == StatusInstalled
}
