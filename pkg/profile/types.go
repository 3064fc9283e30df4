// pkg/profile/types.go
package profile

import "github.com/archup-dev/archup/pkg/core"

// Profile maps a name to the ordered setup a run performs: a plain repo
// package set, priority-resolved apps, services to enable, and feature
// switches for multilib and GPU drivers.
type Profile struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Packages    []string       `toml:"packages"`
	Apps        []core.AppSpec `toml:"apps"`
	Services    []string       `toml:"services"`
	Multilib    bool           `toml:"multilib"`
	GPUDrivers  bool           `toml:"gpu_drivers"`
}

// ExtraGroup is an optional app set toggled by a CLI flag on top of a
// profile (gaming extras, browsers, spotify)
type ExtraGroup struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Apps        []core.AppSpec `toml:"apps"`
}

type extrasFile struct {
	Groups []ExtraGroup `toml:"group"`
}
