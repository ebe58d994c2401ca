package sensors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/rs/zerolog"
)

// FanCollector reads fan speeds from the Linux hwmon sysfs tree. On systems without
// hwmon it reports no groups.
type FanCollector struct {
	Logger   zerolog.Logger
	HwmonDir string
}

func (f *FanCollector) Name() string {
	return "fan"
}

// Collect returns []models.SensorGroup, one group per hwmon device exposing fan*_input.
func (f *FanCollector) Collect(ctx context.Context) (any, error) {
	devices, err := filepath.Glob(filepath.Join(f.HwmonDir, "hwmon*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list hwmon devices: %w", err)
	}
	sort.Strings(devices)

	var groups []models.SensorGroup
	for _, dev := range devices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inputs, err := filepath.Glob(filepath.Join(dev, "fan*_input"))
		if err != nil || len(inputs) == 0 {
			continue
		}
		sort.Strings(inputs)

		group := models.SensorGroup{Name: readTrimmed(filepath.Join(dev, "name"))}
		if group.Name == "" {
			group.Name = filepath.Base(dev)
		}

		for _, input := range inputs {
			rpm, err := strconv.ParseFloat(readTrimmed(input), 64)
			if err != nil {
				f.Logger.Debug().Err(err).Str("file", input).Msg("Skipping unreadable fan input")
				continue
			}
			label := readTrimmed(strings.TrimSuffix(input, "_input") + "_label")
			group.Readings = append(group.Readings, models.SensorReading{Label: label, Current: rpm})
		}

		if len(group.Readings) > 0 {
			groups = append(groups, group)
		}
	}

	f.Logger.Debug().Int("groups", len(groups)).Msg("Fan speeds collected")
	return groups, nil
}

func (f *FanCollector) Unit() string {
	return "rpm"
}

func (f *FanCollector) Description() string {
	return "Fan speeds grouped by hwmon device."
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
