// pkg/system/multilib.go
package system

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/archup-dev/archup/pkg/core"
)

// MultilibEnabled reports whether the [multilib] repository is active in
// pacman.conf. The scan is exact-line: an uncommented "[multilib]"
// section header.
func (m *Manager) MultilibEnabled() (bool, error) {
	data, err := os.ReadFile(filepath.Join(m.etcDir, "pacman.conf"))
	if err != nil {
		return false, &core.Error{Op: "read pacman.conf", Err: err}
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "[multilib]" {
			return true, nil
		}
	}
	return false, nil
}

// EnableMultilib activates the [multilib] repository and refreshes the
// package databases. Idempotent: an already-active section is left alone.
// A commented-out section is uncommented; otherwise the section is
// appended.
func (m *Manager) EnableMultilib(ctx context.Context) error {
	enabled, err := m.MultilibEnabled()
	if err != nil {
		return err
	}
	if enabled {
		m.logger.Debug().Msg("multilib already enabled")
		return nil
	}

	conf := filepath.Join(m.etcDir, "pacman.conf")
	m.logger.Info().Str("file", conf).Msg("enabling multilib repository")

	if m.multilibCommented() {
		err = m.run.Run(ctx, "sh", "-c",
			`sed -i '/^#\[multilib\]/,/^#Include/ s/^#//' `+conf)
	} else {
		err = m.run.Run(ctx, "sh", "-c",
			`printf '\n[multilib]\nInclude = /etc/pacman.d/mirrorlist\n' >> `+conf)
	}
	if err != nil {
		return &core.Error{Op: "enable multilib", Err: err}
	}

	return m.pacman.Refresh(ctx)
}

func (m *Manager) multilibCommented() bool {
	data, err := os.ReadFile(filepath.Join(m.etcDir, "pacman.conf"))
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "#[multilib]" {
			return true
		}
	}
	return false
}
