package pacman

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/runner/runnertest"
)

func TestManagerIsInstalled(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*runnertest.Recorder)
		want      bool
		wantProbe bool
	}{
		{
			name:  "installed",
			setup: func(r *runnertest.Recorder) {},
			want:  true,
		},
		{
			name:  "not installed",
			setup: func(r *runnertest.Recorder) { r.Fail("pacman -Q htop", 1) },
			want:  false,
		},
		{
			name: "pacman cannot answer",
			setup: func(r *runnertest.Recorder) {
				r.Script("pacman -Q htop", runnertest.Response{Err: errors.New("db locked")})
			},
			wantProbe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runnertest.New().Binary("pacman")
			tt.setup(rec)

			m := NewManager(rec, nil)
			got, err := m.IsInstalled(context.Background(), "htop")

			if tt.wantProbe {
				require.Error(t, err)
				assert.ErrorIs(t, err, core.ErrProbeFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManagerInstallIdempotent(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	// pacman -Q succeeds: already installed

	m := NewManager(rec, nil)
	res := m.Install(context.Background(), "htop")

	assert.Equal(t, core.StatusAlreadyPresent, res.Status)
	assert.Empty(t, rec.Runs)
}

func TestManagerInstallRunsPacman(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	rec.Fail("pacman -Q htop", 1)

	m := NewManager(rec, nil)
	res := m.Install(context.Background(), "htop")

	assert.Equal(t, core.StatusInstalled, res.Status)
	assert.Equal(t, []string{"pacman -S --needed --noconfirm htop"}, rec.Runs)
}

func TestManagerInstallFailure(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	rec.Fail("pacman -Q htop", 1)
	rec.Fail("pacman -S --needed --noconfirm htop", 1)

	m := NewManager(rec, nil)
	res := m.Install(context.Background(), "htop")

	assert.Equal(t, core.StatusFailed, res.Status)
	require.Error(t, res.Err)
}

func TestManagerIsAvailableOfflineFallback(t *testing.T) {
	syncDir := t.TempDir()
	raw := buildDB(t, map[string]string{"lutris-0.5.17-1": descLutris})
	require.NoError(t, os.WriteFile(filepath.Join(syncDir, "extra.db"), gzipped(t, raw), 0o644))

	rec := runnertest.New().Binary("pacman")
	rec.Script("pacman -Si", runnertest.Response{Err: errors.New("no mirrors reachable")})

	m := NewManager(rec, &Options{SyncDir: syncDir, Repos: []string{"extra"}})

	got, err := m.IsAvailable(context.Background(), "lutris")
	require.NoError(t, err)
	assert.True(t, got)

	// Virtual providers answer too
	got, err = m.IsAvailable(context.Background(), "lutris-launcher")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = m.IsAvailable(context.Background(), "no-such-package")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestManagerIsAvailableProbeFailedWithoutDatabases(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	rec.Script("pacman -Si", runnertest.Response{Err: errors.New("no mirrors reachable")})

	m := NewManager(rec, &Options{SyncDir: t.TempDir(), Repos: []string{"extra"}})

	_, err := m.IsAvailable(context.Background(), "lutris")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrProbeFailed)
}

func TestManagerRemoveOrphans(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	rec.Script("pacman -Qtdq", runnertest.Response{Stdout: "orphan-a\norphan-b"})

	m := NewManager(rec, nil)
	require.NoError(t, m.RemoveOrphans(context.Background()))

	assert.Equal(t, []string{"pacman -Rns --noconfirm orphan-a orphan-b"}, rec.Runs)
}

func TestManagerRemoveOrphansNoneFound(t *testing.T) {
	rec := runnertest.New().Binary("pacman")
	rec.Fail("pacman -Qtdq", 1) // exit 1 when nothing matches

	m := NewManager(rec, nil)
	require.NoError(t, m.RemoveOrphans(context.Background()))
	assert.Empty(t, rec.Runs)
}

func TestManagerInstallAllEmptySet(t *testing.T) {
	rec := runnertest.New().Binary("pacman")

	m := NewManager(rec, nil)
	require.NoError(t, m.InstallAll(context.Background(), nil))
	assert.Empty(t, rec.Runs)
}
