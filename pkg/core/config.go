// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the run configuration. It is resolved once at startup from
// file and flags and passed down unchanged; components never mutate it.
type Config struct {
	Yes         bool     `yaml:"yes"`          // accept safe defaults, never prompt
	DryRun      bool     `yaml:"dry_run"`      // print commands instead of executing
	SkipAUR     bool     `yaml:"skip_aur"`     // treat AUR ids as absent
	SkipFlatpak bool     `yaml:"skip_flatpak"` // treat Flatpak ids as absent
	NvidiaOpen  bool     `yaml:"nvidia_open"`  // prefer nvidia-open over nvidia
	Profile     string   `yaml:"profile"`      // default profile for apply
	Repos       []string `yaml:"repos"`        // sync repos consulted for offline probes
	Verbosity   int      `yaml:"verbosity"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Profile: "minimal",
		Repos:   []string{"core", "extra", "multilib"},
	}
}

// LoadConfig loads configuration from file. An empty path falls back to
// $XDG_CONFIG_HOME/archup/config.yaml; a missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "archup", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "archup", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SourceEnabled reports whether the config allows a source at all.
// A disabled source is treated exactly like an absent id.
func (c *Config) SourceEnabled(s Source) bool {
	switch s {
	case SourceAUR:
		return !c.SkipAUR
	case SourceFlatpak:
		return !c.SkipFlatpak
	default:
		return true
	}
}
