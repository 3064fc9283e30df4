// pkg/style/status.go
package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/archup-dev/archup/pkg/core"
)

// statusStyle returns the pterm style for a result status
func statusStyle(status core.ResultStatus) *pterm.Style {
	switch status {
	case core.StatusInstalled:
		return pterm.NewStyle(pterm.FgGreen)
	case core.StatusAlreadyPresent:
		return pterm.NewStyle(pterm.FgCyan)
	case core.StatusUnavailable:
		return pterm.NewStyle(pterm.FgYellow)
	case core.StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderResult renders one install result as a status line
func RenderResult(r core.InstallResult) string {
	label := statusStyle(r.Status).Sprintf("%-15s", r.Status)

	switch r.Status {
	case core.StatusInstalled, core.StatusAlreadyPresent:
		return fmt.Sprintf("  %s %s (%s)", label, r.App, r.Source)
	case core.StatusFailed:
		return fmt.Sprintf("  %s %s: %v", label, r.App, r.Err)
	default:
		return fmt.Sprintf("  %s %s", label, r.App)
	}
}

// RenderCheck renders one preflight check as a status line
func RenderCheck(name, detail string, ok bool) string {
	mark := pterm.NewStyle(pterm.FgGreen).Sprint("✓")
	if !ok {
		mark = pterm.NewStyle(pterm.FgRed).Sprint("✗")
	}
	return fmt.Sprintf("  %s %-22s %s", mark, name, detail)
}

// Summary renders the end-of-run result counts
func Summary(results []core.InstallResult) string {
	var installed, present, unavailable, failed int
	for _, r := range results {
		switch r.Status {
		case core.StatusInstalled:
			installed++
		case core.StatusAlreadyPresent:
			present++
		case core.StatusUnavailable:
			unavailable++
		case core.StatusFailed:
			failed++
		}
	}
	return fmt.Sprintf("%d installed, %d already present, %d unavailable, %d failed",
		installed, present, unavailable, failed)
}
