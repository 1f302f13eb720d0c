package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LoggingConfig
		level   zapcore.Level
		wantErr bool
	}{
		{"defaults", LoggingConfig{}, zapcore.InfoLevel, false},
		{"debug console", LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"warning alias", LoggingConfig{Level: "warning", Format: "json"}, zapcore.WarnLevel, false},
		{"error json", LoggingConfig{Level: "error", Format: "json"}, zapcore.ErrorLevel, false},
		{"invalid level", LoggingConfig{Level: "loud"}, 0, true},
		{"invalid format", LoggingConfig{Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestNewLogger_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "immocalc.log")

	logger, err := NewLogger(LoggingConfig{Level: "info", Format: "json", OutputFile: path})
	require.NoError(t, err)
	logger.Info("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
