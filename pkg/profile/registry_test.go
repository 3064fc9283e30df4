package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesListsBuiltinProfiles(t *testing.T) {
	r := NewWithDir(t.TempDir())
	names := r.Names()

	assert.Contains(t, names, "minimal")
	assert.Contains(t, names, "gaming")
	assert.Contains(t, names, "kde")
	assert.NotContains(t, names, "extras")
}

func TestLoadGamingProfile(t *testing.T) {
	r := NewWithDir(t.TempDir())

	p, err := r.Load("gaming")
	require.NoError(t, err)

	assert.Equal(t, "gaming", p.Name)
	assert.True(t, p.Multilib)
	assert.True(t, p.GPUDrivers)
	assert.Contains(t, p.Packages, "gamemode")
	assert.Contains(t, p.Services, "bluetooth")

	var found bool
	for _, app := range p.Apps {
		if app.Name == "Lutris" {
			found = true
			assert.Equal(t, "lutris", app.Repo)
			assert.Equal(t, "lutris", app.AUR)
			assert.Equal(t, "net.lutris.Lutris", app.Flatpak)
		}
	}
	assert.True(t, found, "gaming profile should carry Lutris")
}

func TestLoadUnknownProfile(t *testing.T) {
	r := NewWithDir(t.TempDir())
	_, err := r.Load("nonexistent")
	assert.Error(t, err)
}

func TestUserOverrideTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	override := `name = "minimal"
description = "my own minimal"
packages = ["git"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.toml"), []byte(override), 0o644))

	r := NewWithDir(dir)
	p, err := r.Load("minimal")
	require.NoError(t, err)

	assert.Equal(t, "my own minimal", p.Description)
	assert.Equal(t, []string{"git"}, p.Packages)
}

func TestUserProfileBeyondBuiltins(t *testing.T) {
	dir := t.TempDir()
	custom := `name = "server"
description = "headless box"
packages = ["openssh"]
services = ["sshd"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server.toml"), []byte(custom), 0o644))

	r := NewWithDir(dir)
	assert.Contains(t, r.Names(), "server")

	p, err := r.Load("server")
	require.NoError(t, err)
	assert.Equal(t, []string{"sshd"}, p.Services)
}

func TestExtras(t *testing.T) {
	r := NewWithDir(t.TempDir())

	groups, err := r.Extras("chrome", "spotify")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "chrome", groups[0].Name)
	require.Len(t, groups[0].Apps, 1)
	assert.Equal(t, "google-chrome", groups[0].Apps[0].AUR)
	assert.Equal(t, "com.google.Chrome", groups[0].Apps[0].Flatpak)

	assert.Equal(t, "spotify", groups[1].Name)
}

func TestExtrasUnknownGroup(t *testing.T) {
	r := NewWithDir(t.TempDir())
	_, err := r.Extras("no-such-group")
	assert.Error(t, err)
}

func TestExtrasEmptySelection(t *testing.T) {
	r := NewWithDir(t.TempDir())
	groups, err := r.Extras()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFindApp(t *testing.T) {
	r := NewWithDir(t.TempDir())

	spec, ok := r.FindApp("lutris")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "Lutris", spec.Name)

	spec, ok = r.FindApp("Google Chrome")
	require.True(t, ok)
	assert.Equal(t, "google-chrome", spec.AUR)

	_, ok = r.FindApp("definitely-not-an-app")
	assert.False(t, ok)
}

func TestBuiltinProfilesAreValid(t *testing.T) {
	r := NewWithDir(t.TempDir())
	for _, name := range r.Names() {
		p, err := r.Load(name)
		require.NoError(t, err, "profile %s must parse", name)
		assert.NotEmpty(t, p.Description)
	}
}
