package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.File, "logging defaults to disabled")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid json", cfg: Config{Level: "debug", Format: "json"}},
		{name: "valid console", cfg: Config{Level: "warn", Format: "console"}},
		{name: "bad level", cfg: Config{Level: "verbose", Format: "json"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{Level: "info", Format: "text"}, wantErr: "format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_NoFileIsNop(t *testing.T) {
	logger, err := New(NewDefaultConfig())

	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("goes nowhere")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stairtrek.log")
	logger, err := New(Config{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Info("climbed some stairs")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "climbed some stairs")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
