package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"), file.NewFileService())
	require.NoError(t, err)

	assert.Equal(t, "battery_log.csv", config.CSVFile)
	assert.Equal(t, time.Second, config.SampleInterval)
	assert.Equal(t, 15*time.Second, config.LogInterval)
	assert.Equal(t, 800*time.Millisecond, config.Sensors.Timeout)
	assert.False(t, config.Metrics.Enabled)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batterymon.yaml")
	content := `
csv_file: rundown.csv
log_interval: 30s
log:
  level: debug
metrics:
  enabled: true
  textfile: /tmp/batterymon.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := utils.LoadConfig(path, file.NewFileService())
	require.NoError(t, err)

	assert.Equal(t, "rundown.csv", config.CSVFile)
	assert.Equal(t, 30*time.Second, config.LogInterval)
	assert.Equal(t, time.Second, config.SampleInterval)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, "/tmp/batterymon.prom", config.Metrics.Textfile)
}

func TestLoadConfig_RejectsInvalidInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batterymon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample_interval: 0s\n"), 0644))

	_, err := utils.LoadConfig(path, file.NewFileService())
	assert.ErrorContains(t, err, "sample_interval must be positive")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := utils.NewLogger("loud", "", os.Stderr)
	assert.Error(t, err)
}
