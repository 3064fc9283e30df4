package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archup-dev/archup/pkg/pacman"
	"github.com/archup-dev/archup/pkg/runner/runnertest"
)

const confEnabled = `[options]
HoldPkg = pacman glibc

[core]
Include = /etc/pacman.d/mirrorlist

[multilib]
Include = /etc/pacman.d/mirrorlist
`

const confCommented = `[core]
Include = /etc/pacman.d/mirrorlist

#[multilib]
#Include = /etc/pacman.d/mirrorlist
`

const confAbsent = `[core]
Include = /etc/pacman.d/mirrorlist
`

func managerWithConf(t *testing.T, rec *runnertest.Recorder, conf string) *Manager {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pacman.conf"), []byte(conf), 0o644))

	m := NewManager(rec, pacman.NewManager(rec, nil))
	m.etcDir = dir
	return m
}

func TestMultilibEnabledDetection(t *testing.T) {
	tests := []struct {
		name string
		conf string
		want bool
	}{
		{"active section", confEnabled, true},
		{"commented section", confCommented, false},
		{"no section", confAbsent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := managerWithConf(t, runnertest.New(), tt.conf)
			got, err := m.MultilibEnabled()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnableMultilibAlreadyActive(t *testing.T) {
	rec := runnertest.New()
	m := managerWithConf(t, rec, confEnabled)

	require.NoError(t, m.EnableMultilib(context.Background()))
	assert.Empty(t, rec.Runs)
}

func TestEnableMultilibUncommentsSection(t *testing.T) {
	rec := runnertest.New()
	m := managerWithConf(t, rec, confCommented)

	require.NoError(t, m.EnableMultilib(context.Background()))

	require.Len(t, rec.Runs, 2)
	assert.Contains(t, rec.Runs[0], "sed -i")
	assert.Equal(t, "pacman -Sy", rec.Runs[1])
}

func TestEnableMultilibAppendsSection(t *testing.T) {
	rec := runnertest.New()
	m := managerWithConf(t, rec, confAbsent)

	require.NoError(t, m.EnableMultilib(context.Background()))

	require.Len(t, rec.Runs, 2)
	assert.Contains(t, rec.Runs[0], "[multilib]")
	assert.Contains(t, rec.Runs[0], ">>")
	assert.Equal(t, "pacman -Sy", rec.Runs[1])
}
