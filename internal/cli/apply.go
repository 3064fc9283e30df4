// internal/cli/apply.go
package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/archup-dev/archup/pkg/core"
	"github.com/archup-dev/archup/pkg/profile"
	"github.com/archup-dev/archup/pkg/style"
)

var (
	applyProfile   string
	applyGaming    bool
	applyChromium  bool
	applyChrome    bool
	applySpotify   bool
	applyNoUpgrade bool
	applyCleanup   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a named setup profile",
	Long: `Apply a profile end to end: preflight, system upgrade, multilib and
GPU drivers where the profile asks for them, the profile's packages and
apps, then services.

  archup apply --profile gaming --gaming-extras
  archup apply --profile kde --dry-run`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyProfile, "profile", "p", "", "profile to apply (minimal, gaming, kde)")
	applyCmd.Flags().BoolVar(&applyGaming, "gaming-extras", false, "install gaming launchers and compatibility tools")
	applyCmd.Flags().BoolVar(&applyChromium, "install-chromium", false, "install Chromium")
	applyCmd.Flags().BoolVar(&applyChrome, "install-chrome", false, "install Google Chrome")
	applyCmd.Flags().BoolVar(&applySpotify, "install-spotify", false, "install Spotify")
	applyCmd.Flags().BoolVar(&applyNoUpgrade, "no-upgrade", false, "skip the full system upgrade")
	applyCmd.Flags().BoolVar(&applyCleanup, "cleanup", false, "remove orphaned packages afterwards")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name := applyProfile
	if name == "" {
		name = config.Profile
	}

	registry := profile.New()
	prof, err := registry.Load(name)
	if err != nil {
		return err
	}

	// The gaming profile always carries its extras
	if prof.Name == "gaming" {
		applyGaming = true
	}
	extras, err := registry.Extras(selectedExtras()...)
	if err != nil {
		return err
	}

	session := newSession()
	sys := session.System()

	pterm.DefaultSection.Printf("Applying profile %q", prof.Name)

	checks, err := session.Preflight(ctx)
	for _, c := range checks {
		fmt.Println(style.RenderCheck(c.Name, c.Detail, c.OK))
	}
	if err != nil {
		return err
	}

	if !applyNoUpgrade {
		if err := session.Resolver().Pacman().Upgrade(ctx); err != nil {
			pterm.Error.Println(err.Error())
		}
	}

	if prof.Multilib {
		if err := sys.EnableMultilib(ctx); err != nil {
			pterm.Error.Println(err.Error())
		}
	}

	if prof.GPUDrivers {
		if err := sys.InstallGPUDrivers(ctx, config.NvidiaOpen); err != nil {
			pterm.Error.Println(err.Error())
		}
	}

	if err := session.Resolver().Pacman().InstallAll(ctx, prof.Packages); err != nil {
		pterm.Error.Println(err.Error())
	}

	specs := prof.Apps
	for _, g := range extras {
		specs = append(specs, g.Apps...)
	}

	results := session.ResolveAll(ctx, specs)
	for _, r := range results {
		fmt.Println(style.RenderResult(r))
	}

	sys.EnableServices(ctx, prof.Services)

	if applyCleanup {
		if err := session.Resolver().Pacman().RemoveOrphans(ctx); err != nil {
			pterm.Error.Println(err.Error())
		}
	}

	pterm.Success.Println(style.Summary(results))
	return failedSummaryErr(results)
}

func selectedExtras() []string {
	var names []string
	if applyGaming {
		names = append(names, "gaming-extras")
	}
	if applyChromium {
		names = append(names, "chromium")
	}
	if applyChrome {
		names = append(names, "chrome")
	}
	if applySpotify {
		names = append(names, "spotify")
	}
	return names
}

// failedSummaryErr keeps install failures step-local during the run but
// still reflects them in the final status
func failedSummaryErr(results []core.InstallResult) error {
	for _, r := range results {
		if r.Status == core.StatusFailed {
			return fmt.Errorf("some applications failed to install")
		}
	}
	return nil
}
