package flatpak

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/runner/runnertest"
)

func TestEnsureRemoteAlreadyRegistered(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	rec.Script("flatpak remotes", runnertest.Response{Stdout: "flathub\nfedora"})

	m := NewManager(rec)
	require.NoError(t, m.EnsureRemote(context.Background()))
	assert.Empty(t, rec.Runs, "add-if-absent must not run when the remote exists")
}

func TestEnsureRemoteAddsFlathub(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	rec.Script("flatpak remotes", runnertest.Response{Stdout: ""})

	m := NewManager(rec)
	require.NoError(t, m.EnsureRemote(context.Background()))

	require.Len(t, rec.Runs, 1)
	assert.Equal(t, "flatpak remote-add --if-not-exists flathub "+RemoteURL, rec.Runs[0])

	// Cached for the run: a second ensure issues nothing new
	require.NoError(t, m.EnsureRemote(context.Background()))
	assert.Len(t, rec.Runs, 1)
}

func TestEnsureRemoteFailure(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	rec.Script("flatpak remotes", runnertest.Response{Stdout: ""})
	rec.Fail("flatpak remote-add", 1)

	m := NewManager(rec)
	err := m.EnsureRemote(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrRemoteSetup)
}

func TestInstallEnsuresRemoteFirst(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	rec.Fail("flatpak info", 1)
	rec.Script("flatpak remotes", runnertest.Response{Stdout: ""})

	m := NewManager(rec)
	res := m.Install(context.Background(), "com.spotify.Client")

	require.Equal(t, core.StatusInstalled, res.Status)
	assert.Equal(t, []string{
		"flatpak remote-add --if-not-exists flathub " + RemoteURL,
		"flatpak install -y --noninteractive flathub com.spotify.Client",
	}, rec.Runs)
}

func TestInstallRemoteSetupFailureIsFailed(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	rec.Fail("flatpak info", 1)
	rec.Script("flatpak remotes", runnertest.Response{Stdout: ""})
	rec.Fail("flatpak remote-add", 1)

	m := NewManager(rec)
	res := m.Install(context.Background(), "com.spotify.Client")

	assert.Equal(t, core.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, core.ErrRemoteSetup)
}

func TestInstallAlreadyPresent(t *testing.T) {
	rec := runnertest.New().Binary("flatpak")
	// flatpak info succeeds

	m := NewManager(rec)
	res := m.Install(context.Background(), "com.spotify.Client")

	assert.Equal(t, core.StatusAlreadyPresent, res.Status)
	assert.Empty(t, rec.Runs)
}

func TestParseColumn(t *testing.T) {
	assert.Equal(t, []string{"flathub", "fedora"}, parseColumn("flathub\n\nfedora\n"))
	assert.Nil(t, parseColumn(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold([]string{"Flathub"}, "flathub"))
	assert.False(t, containsFold([]string{"fedora"}, "flathub"))
}
