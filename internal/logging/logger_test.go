package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/people-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(config.LogSettings{Level: "chatty", Format: config.LogFormatConsole})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNewAppliesLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(config.LogSettings{Level: "warn", Format: config.LogFormatConsole, File: filepath.Join(t.TempDir(), "people.log")})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewJSONWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "people.log")
	logger, err := New(config.LogSettings{Level: "info", Format: config.LogFormatJSON, File: path})
	require.NoError(t, err)

	logger.Error("list people", zap.String("error", "status 500"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "list people", entry["msg"])
	assert.Equal(t, "status 500", entry["error"])
}
