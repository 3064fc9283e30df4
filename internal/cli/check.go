// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/archup-dev/archup/pkg/style"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run read-only preflight checks",
	Long: `Verify the environment without changing anything: supported
distribution, privilege escalation, network reachability, clock sync.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	session := newSession()

	checks, err := session.Preflight(cmd.Context())

	pterm.DefaultSection.Println("Preflight")
	for _, c := range checks {
		fmt.Println(style.RenderCheck(c.Name, c.Detail, c.OK))
	}

	if err != nil {
		return err
	}

	pterm.Success.Println("environment looks good")
	return nil
}
