package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/backprop/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"production info", config.LoggingConfig{Level: "info"}, false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"development warn", config.LoggingConfig{Level: "warn", Development: true}, false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"verbose overrides", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel, zapcore.InvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			require.NoError(t, err)

			core := logger.Core()
			assert.True(t, core.Enabled(tt.enabled))
			if tt.muted != zapcore.InvalidLevel {
				assert.False(t, core.Enabled(tt.muted))
			}
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, false)
	assert.ErrorContains(t, err, "failed to parse log level")
}
