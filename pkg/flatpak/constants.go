// pkg/flatpak/constants.go
package flatpak

const (
	// Binary is the flatpak executable name
	Binary = "flatpak"

	// RemoteName is the remote applications are installed from
	RemoteName = "flathub"

	// RemoteURL is the Flathub repository descriptor
	RemoteURL = "https://dl.flathub.org/repo/flathub.flatpakrepo"
)
