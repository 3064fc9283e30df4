// pkg/profile/registry.go
package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/archup-dev/archup/pkg/core"
)

//go:embed profiles/*.toml
var builtin embed.FS

// Registry provides lookup of named profiles and extras groups. Built-in
// definitions are embedded; a file with the same name under the user
// profile directory takes precedence.
type Registry struct {
	userDir string
}

// New creates a Registry with the default user override directory
// ($XDG_CONFIG_HOME/archup/profiles)
func New() *Registry {
	return &Registry{
		userDir: filepath.Join(xdg.ConfigHome, "archup", "profiles"),
	}
}

// NewWithDir creates a Registry with a specific override directory
func NewWithDir(dir string) *Registry {
	return &Registry{userDir: dir}
}

// Names returns all known profile names, built-in and user-defined, sorted
func (r *Registry) Names() []string {
	seen := map[string]bool{}

	entries, err := builtin.ReadDir("profiles")
	if err == nil {
		for _, e := range entries {
			name := strings.TrimSuffix(e.Name(), ".toml")
			if name != "extras" {
				seen[name] = true
			}
		}
	}

	userEntries, err := os.ReadDir(r.userDir)
	if err == nil {
		for _, e := range userEntries {
			if strings.HasSuffix(e.Name(), ".toml") {
				name := strings.TrimSuffix(e.Name(), ".toml")
				if name != "extras" {
					seen[name] = true
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a profile by name
func (r *Registry) Load(name string) (*Profile, error) {
	data, err := r.read(name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}

	for _, app := range p.Apps {
		if err := app.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}

	return &p, nil
}

// Extras returns the extras groups matching the requested names
func (r *Registry) Extras(names ...string) ([]ExtraGroup, error) {
	data, err := r.read("extras.toml")
	if err != nil {
		return nil, fmt.Errorf("extras definitions not found")
	}

	var file extrasFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing extras: %w", err)
	}

	var groups []ExtraGroup
	for _, want := range names {
		found := false
		for _, g := range file.Groups {
			if g.Name == want {
				groups = append(groups, g)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown extras group %q", want)
		}
	}
	return groups, nil
}

// FindApp looks up an app spec by logical name across all profiles and
// extras groups, case-insensitively
func (r *Registry) FindApp(name string) (core.AppSpec, bool) {
	for _, profileName := range r.Names() {
		p, err := r.Load(profileName)
		if err != nil {
			continue
		}
		for _, app := range p.Apps {
			if strings.EqualFold(app.Name, name) {
				return app, true
			}
		}
	}

	data, err := r.read("extras.toml")
	if err == nil {
		var file extrasFile
		if toml.Unmarshal(data, &file) == nil {
			for _, g := range file.Groups {
				for _, app := range g.Apps {
					if strings.EqualFold(app.Name, name) {
						return app, true
					}
				}
			}
		}
	}

	return core.AppSpec{}, false
}

// read returns the user override when present, the embedded file otherwise
func (r *Registry) read(file string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(r.userDir, file)); err == nil {
		return data, nil
	}
	return builtin.ReadFile("profiles/" + file)
}
