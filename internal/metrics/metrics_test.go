package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benmeehan/batterymon/internal/metrics"
	"github.com/benmeehan/batterymon/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New()
	cpu := 37.5

	m.Observe(models.Snapshot{
		Battery:      &models.BatteryStatus{Percent: 64.2, SecsLeft: 3725},
		Temperatures: []models.SensorGroup{{Name: "coretemp", Readings: []models.SensorReading{{Current: 58}}}},
		CPUUsage:     &cpu,
	}, 2)

	assert.Equal(t, 64.2, testutil.ToFloat64(m.BatteryPercent))
	assert.Equal(t, 3725.0, testutil.ToFloat64(m.SecondsLeft))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PowerPlugged))
	assert.Equal(t, 58.0, testutil.ToFloat64(m.Temperature))
	assert.Equal(t, 37.5, testutil.ToFloat64(m.CPUUsage))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoadWorkers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Samples))

	// A tick without a battery keeps the last value and adds no sample.
	m.Observe(models.Snapshot{}, 0)
	assert.Equal(t, 64.2, testutil.ToFloat64(m.BatteryPercent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Samples))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LoadWorkers))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := metrics.New()
	m.Observe(models.Snapshot{Battery: &models.BatteryStatus{Percent: 50, PowerPlugged: true}}, 0)

	path := filepath.Join(t.TempDir(), "batterymon.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "batterymon_battery_percent 50")
	assert.Contains(t, string(data), "batterymon_power_plugged 1")
}
