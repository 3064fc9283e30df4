package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    AppSpec
		wantErr bool
	}{
		{"repo only", AppSpec{Name: "Chromium", Repo: "chromium"}, false},
		{"aur only", AppSpec{Name: "Chrome", AUR: "google-chrome"}, false},
		{"flatpak only", AppSpec{Name: "Spotify", Flatpak: "com.spotify.Client"}, false},
		{"all three", AppSpec{Name: "Lutris", Repo: "lutris", AUR: "lutris", Flatpak: "net.lutris.Lutris"}, false},
		{"no ids", AppSpec{Name: "Empty"}, true},
		{"no name", AppSpec{Repo: "htop"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSpec)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSourcePriorityOrder(t *testing.T) {
	order := Sources()
	require.Len(t, order, 3)
	assert.Equal(t, SourceRepo, order[0])
	assert.Equal(t, SourceAUR, order[1])
	assert.Equal(t, SourceFlatpak, order[2])
	assert.True(t, SourceRepo < SourceAUR && SourceAUR < SourceFlatpak)
}

func TestAppSpecID(t *testing.T) {
	spec := AppSpec{Name: "Heroic", AUR: "heroic-games-launcher-bin", Flatpak: "com.heroicgameslauncher.hgl"}

	assert.Equal(t, "", spec.ID(SourceRepo))
	assert.Equal(t, "heroic-games-launcher-bin", spec.ID(SourceAUR))
	assert.Equal(t, "com.heroicgameslauncher.hgl", spec.ID(SourceFlatpak))
}

func TestConfigSourceEnabled(t *testing.T) {
	cfg := &Config{SkipAUR: true}

	assert.True(t, cfg.SourceEnabled(SourceRepo))
	assert.False(t, cfg.SourceEnabled(SourceAUR))
	assert.True(t, cfg.SourceEnabled(SourceFlatpak))
}

func TestInstallResultOK(t *testing.T) {
	assert.True(t, InstallResult{Status: StatusAlreadyPresent}.OK())
	assert.True(t, InstallResult{Status: StatusInstalled}.OK())
	assert.False(t, InstallResult{Status: StatusUnavailable}.OK())
	assert.False(t, InstallResult{Status: StatusFailed}.OK())
}
