// internal/cli/install.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/profile"
	"github.com/archup-dev/archup/pkg/style"
)

var (
	installRepo    string
	installAUR     string
	installFlatpak string
)

var installCmd = &cobra.Command{
	Use:   "install [app...]",
	Short: "Install applications with priority fallback",
	Long: `Install applications, trying the official repositories first, then the
AUR, then Flathub.

Named apps are looked up in the profile catalog; unknown names are tried
as a repo and AUR package id. An explicit id triple can be given instead:

  archup install lutris
  archup install --repo chromium
  archup install --aur google-chrome --flatpak com.google.Chrome`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installRepo, "repo", "", "official repository package id")
	installCmd.Flags().StringVar(&installAUR, "aur", "", "AUR package id")
	installCmd.Flags().StringVar(&installFlatpak, "flatpak", "", "Flatpak application id")
}

func runInstall(cmd *cobra.Command, args []string) error {
	specs, err := collectSpecs(args)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return &usageError{err: fmt.Errorf("nothing to install: give app names or an id triple")}
	}

	session := newSession()

	if _, err := session.Preflight(cmd.Context()); err != nil {
		return err
	}

	results := session.ResolveAll(cmd.Context(), specs)
	for _, r := range results {
		fmt.Println(style.RenderResult(r))
	}
	fmt.Println(style.Summary(results))

	return failedSummaryErr(results)
}

// collectSpecs turns CLI input into app specs: an explicit id triple, or
// named apps resolved through the profile catalog
func collectSpecs(args []string) ([]core.AppSpec, error) {
	if installRepo != "" || installAUR != "" || installFlatpak != "" {
		if len(args) > 1 {
			return nil, &usageError{err: fmt.Errorf("an id triple applies to a single app")}
		}
		name := installRepo
		if name == "" {
			name = installAUR
		}
		if name == "" {
			name = installFlatpak
		}
		if len(args) == 1 {
			name = args[0]
		}
		spec := core.AppSpec{Name: name, Repo: installRepo, AUR: installAUR, Flatpak: installFlatpak}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		return []core.AppSpec{spec}, nil
	}

	catalog := profile.New()
	var specs []core.AppSpec
	for _, name := range args {
		if spec, ok := catalog.FindApp(name); ok {
			specs = append(specs, spec)
			continue
		}
		// Unknown to the catalog: try the name as a package id
		specs = append(specs, core.AppSpec{Name: name, Repo: name, AUR: name})
	}
	return specs, nil
}
