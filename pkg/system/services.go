// pkg/system/services.go
package system

import (
	"context"
	"strings"
)

// EnableServices enables and starts the given systemd units. Already
// enabled units are skipped; per-unit failures are logged and do not stop
// the remaining units.
func (m *Manager) EnableServices(ctx context.Context, services []string) {
	for _, svc := range services {
		out, err := m.run.Output(ctx, "systemctl", "is-enabled", svc)
		if err == nil && strings.TrimSpace(out) == "enabled" {
			m.logger.Debug().Str("service", svc).Msg("already enabled")
			continue
		}

		m.logger.Info().Str("service", svc).Msg("enabling service")
		if err := m.run.Run(ctx, "systemctl", "enable", "--now", svc); err != nil {
			m.logger.Error().Err(err).Str("service", svc).Msg("failed to enable service")
		}
	}
}
