// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/archup-dev/archup"
	"github.com/archup-dev/archup/pkg/logging"
)

var (
	cfgFile     string
	flagYes     bool
	flagDryRun  bool
	flagSkipAUR bool
	flagSkipFp  bool
	verbosity   int

	config *archup.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archup",
	Short: "Arch Linux post-install automation",
	Long: `archup - Arch Linux post-install automation

Installs applications from the official repositories, the AUR and Flathub
with priority fallback, and applies named setup profiles (repositories,
GPU drivers, services).`,
	Version:       "1.0.0",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// usageError marks CLI argument parse errors so main can exit 2
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// IsUsageError reports whether err is a CLI parse error
func IsUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/archup/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "non-interactive, accept safe defaults")
	rootCmd.PersistentFlags().BoolVarP(&flagDryRun, "dry-run", "n", false, "print commands instead of executing them")
	rootCmd.PersistentFlags().BoolVar(&flagSkipAUR, "skip-aur", false, "never install from the AUR")
	rootCmd.PersistentFlags().BoolVar(&flagSkipFp, "skip-flatpak", false, "never install from Flathub")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = archup.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = archup.DefaultConfig()
	}

	// Flags override the config file
	if flagYes {
		config.Yes = true
	}
	if flagDryRun {
		config.DryRun = true
	}
	if flagSkipAUR {
		config.SkipAUR = true
	}
	if flagSkipFp {
		config.SkipFlatpak = true
	}
	if verbosity > config.Verbosity {
		config.Verbosity = verbosity
	}

	logging.Setup(config.Verbosity)
}

// newSession builds a session with the interactive confirm policy:
// --yes accepts everything, a non-TTY stdin declines everything else.
func newSession() *archup.Session {
	return archup.NewSession(config, confirm)
}

func confirm(prompt string) bool {
	if config.Yes {
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		pterm.Warning.Println("stdin is not a terminal, declining: " + prompt)
		return false
	}
	ok, _ := pterm.DefaultInteractiveConfirm.Show(prompt)
	return ok
}
