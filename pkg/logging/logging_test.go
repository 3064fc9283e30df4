// pkg/logging/logging_test.go
package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupVerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		Setup(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.True(t, strings.HasSuffix(path, "archup/archup.log"), "unexpected log path %q", path)
}

func TestGetLoggerCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := GetLogger("resolver").Output(&buf).Level(zerolog.InfoLevel)
	logger.Info().Msg("probe")
	assert.Contains(t, buf.String(), `"component":"resolver"`)
}
