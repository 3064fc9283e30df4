// internal/cli/list.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archup-dev/archup/pkg/aur"
	"github.com/archup-dev/archup/pkg/profile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles and available sources",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	session := newSession()
	run := session.Runner()

	fmt.Println("Profiles:")
	registry := profile.New()
	for _, name := range registry.Names() {
		p, err := registry.Load(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == config.Profile {
			marker = "*"
		}
		fmt.Printf("  %s %-10s %s\n", marker, name, p.Description)
	}

	fmt.Println("\nSources:")
	fmt.Printf("  %-8s %s\n", "repo", mark(run.LookPath("pacman")))
	helper, ok := aur.DetectHelper(run)
	if ok {
		fmt.Printf("  %-8s available (%s)\n", "aur", helper)
	} else {
		fmt.Printf("  %-8s no helper installed\n", "aur")
	}
	fmt.Printf("  %-8s %s\n", "flatpak", mark(session.Resolver().Flatpak().Ready(context.Background())))

	return nil
}

func mark(ok bool) string {
	if ok {
		return "available"
	}
	return "not available"
}
