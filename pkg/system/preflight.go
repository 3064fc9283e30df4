// pkg/system/preflight.go
package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/archup-dev/archup/pkg/core"
)

// Check is one preflight verification result
type Check struct {
	Name   string
	OK     bool
	Detail string
	Fatal  bool // a failed fatal check aborts the run
}

// Preflight runs the read-only environment checks. The returned error is
// non-nil exactly when a fatal check failed, and wraps ErrPrecondition.
func (m *Manager) Preflight(ctx context.Context) ([]Check, error) {
	checks := []Check{
		m.checkArch(),
		m.checkSudo(),
		m.checkNetwork(ctx),
		m.checkTimeSync(ctx),
	}

	for _, c := range checks {
		if c.Fatal && !c.OK {
			return checks, fmt.Errorf("%w: %s (%s)", core.ErrPrecondition, c.Name, c.Detail)
		}
	}
	return checks, nil
}

func (m *Manager) checkArch() Check {
	c := Check{Name: "arch linux", Fatal: true}
	if m.isArchLinux() {
		c.OK = true
		c.Detail = "supported distribution"
	} else {
		c.Detail = "this tool only supports Arch Linux and derivatives"
	}
	return c
}

// isArchLinux detects Arch and its derivatives from the release files
func (m *Manager) isArchLinux() bool {
	if _, err := os.Stat(filepath.Join(m.etcDir, "arch-release")); err == nil {
		return true
	}

	data, err := os.ReadFile(filepath.Join(m.etcDir, "os-release"))
	if err != nil {
		return false
	}
	content := strings.ToLower(string(data))
	return strings.Contains(content, "arch") || strings.Contains(content, "manjaro")
}

func (m *Manager) checkSudo() Check {
	c := Check{Name: "privilege escalation", Fatal: true}
	if os.Geteuid() == 0 {
		c.OK = true
		c.Detail = "running as root"
		return c
	}
	if m.run.LookPath("sudo") {
		c.OK = true
		c.Detail = "sudo available"
		return c
	}
	c.Detail = "not root and sudo not found"
	return c
}

func (m *Manager) checkNetwork(ctx context.Context) Check {
	c := Check{Name: "network", Fatal: true}
	if _, err := m.run.Output(ctx, "ping", "-c", "1", "-W", "2", "archlinux.org"); err != nil {
		c.Detail = "archlinux.org unreachable"
		return c
	}
	c.OK = true
	c.Detail = "archlinux.org reachable"
	return c
}

// checkTimeSync warns on clock drift; a skewed clock breaks TLS and
// signature checks in subtle ways but is not worth aborting over
func (m *Manager) checkTimeSync(ctx context.Context) Check {
	c := Check{Name: "time sync", Fatal: false}
	out, err := m.run.Output(ctx, "timedatectl", "show", "-p", "NTPSynchronized", "--value")
	if err != nil {
		c.Detail = "timedatectl not available"
		return c
	}
	if strings.TrimSpace(out) == "yes" {
		c.OK = true
		c.Detail = "NTP synchronized"
	} else {
		c.Detail = "clock not NTP synchronized"
	}
	return c
}
