package sensors

import (
	"context"
	"strings"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/host"
)

// TemperatureCollector reads thermal sensors through gopsutil.
type TemperatureCollector struct {
	Logger zerolog.Logger

	// read defaults to host.SensorsTemperaturesWithContext
	read func(ctx context.Context) ([]host.TemperatureStat, error)
}

// NewTemperatureCollector creates a collector backed by the host sensors.
func NewTemperatureCollector(logger zerolog.Logger) *TemperatureCollector {
	return &TemperatureCollector{Logger: logger, read: host.SensorsTemperaturesWithContext}
}

func (t *TemperatureCollector) Name() string {
	return "temperature"
}

// Collect returns []models.SensorGroup. gopsutil may return readings together with a
// warning error for chips it could not read; the readings are kept in that case.
func (t *TemperatureCollector) Collect(ctx context.Context) (any, error) {
	stats, err := t.read(ctx)
	if err != nil && len(stats) == 0 {
		return nil, err
	}
	if err != nil {
		t.Logger.Debug().Err(err).Msg("Partial temperature readings")
	}

	groups := GroupTemperatures(stats)
	t.Logger.Debug().Int("groups", len(groups)).Msg("Temperatures collected")
	return groups, nil
}

func (t *TemperatureCollector) Unit() string {
	return "celsius"
}

func (t *TemperatureCollector) Description() string {
	return "Temperature readings grouped by sensor chip."
}

// GroupTemperatures groups readings by chip name, the part of the sensor key before the
// first underscore ("coretemp_core0_input" belongs to "coretemp"). Groups keep the order
// in which their first reading appeared.
func GroupTemperatures(stats []host.TemperatureStat) []models.SensorGroup {
	index := make(map[string]int)
	var groups []models.SensorGroup

	for _, stat := range stats {
		chip, label := splitSensorKey(stat.SensorKey)
		i, ok := index[chip]
		if !ok {
			i = len(groups)
			index[chip] = i
			groups = append(groups, models.SensorGroup{Name: chip})
		}
		groups[i].Readings = append(groups[i].Readings, models.SensorReading{
			Label:   label,
			Current: stat.Temperature,
		})
	}
	return groups
}

func splitSensorKey(key string) (chip, label string) {
	chip, label, found := strings.Cut(key, "_")
	if !found {
		return key, ""
	}
	return chip, strings.TrimSuffix(label, "_input")
}
