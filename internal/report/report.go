// Package report turns the CSV battery log into spreadsheet and PDF rundown reports.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/benmeehan/batterymon/pkg/file"
)

// ErrNoSamples is returned when the log holds no data rows.
var ErrNoSamples = errors.New("battery log has no samples")

// Summary describes one rundown.
type Summary struct {
	Samples      int
	StartTime    string
	EndTime      string
	StartPercent float64
	EndPercent   float64
	Elapsed      time.Duration
	// DrainPerHour is percentage points lost per hour; negative while charging.
	DrainPerHour float64
}

// LoadSamples reads the CSV log. The header and rows that do not parse are skipped.
func LoadSamples(path string, fileClient file.FileOperations) ([]models.Sample, error) {
	records, err := fileClient.ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read battery log: %w", err)
	}

	samples := make([]models.Sample, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		ts := strings.TrimSpace(record[0])
		if _, err := time.Parse(models.TimeLayout, ts); err != nil {
			continue
		}
		percent, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			continue
		}
		samples = append(samples, models.Sample{Time: ts, BatteryPercent: percent})
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return samples, nil
}

// Summarize computes the rundown summary. Rows only carry a time of day, so a clock that
// goes backwards is taken as a midnight rollover.
func Summarize(samples []models.Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	first, last := samples[0], samples[len(samples)-1]
	s := Summary{
		Samples:      len(samples),
		StartTime:    first.Time,
		EndTime:      last.Time,
		StartPercent: first.BatteryPercent,
		EndPercent:   last.BatteryPercent,
	}

	prev, err := time.Parse(models.TimeLayout, first.Time)
	if err != nil {
		return Summary{}, fmt.Errorf("invalid sample time %q: %w", first.Time, err)
	}
	for _, sample := range samples[1:] {
		t, err := time.Parse(models.TimeLayout, sample.Time)
		if err != nil {
			return Summary{}, fmt.Errorf("invalid sample time %q: %w", sample.Time, err)
		}
		step := t.Sub(prev)
		if step < 0 {
			step += 24 * time.Hour
		}
		s.Elapsed += step
		prev = t
	}

	if hours := s.Elapsed.Hours(); hours > 0 {
		s.DrainPerHour = (s.StartPercent - s.EndPercent) / hours
	}
	return s, nil
}
