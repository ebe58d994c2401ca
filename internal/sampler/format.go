package sampler

import (
	"fmt"
	"math"

	"github.com/benmeehan/batterymon/internal/models"
)

// NotAvailable is shown for any reading the machine does not provide.
const NotAvailable = "N/A"

// FormatTemperature renders the first reading of the first temperature group.
func FormatTemperature(groups []models.SensorGroup) string {
	reading, ok := models.FirstReading(groups)
	if !ok || math.IsNaN(reading.Current) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f°C", reading.Current)
}

// FormatFan renders the first reading of the first fan group.
func FormatFan(groups []models.SensorGroup) string {
	reading, ok := models.FirstReading(groups)
	if !ok || math.IsNaN(reading.Current) {
		return NotAvailable
	}
	return fmt.Sprintf("%d RPM", int64(math.Round(reading.Current)))
}

// FormatPercent renders a battery percentage with one decimal.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// FormatTimeRemaining renders the battery estimate. Being plugged in wins over any estimate.
func FormatTimeRemaining(status models.BatteryStatus) string {
	switch {
	case status.PowerPlugged:
		return "Charging"
	case status.SecsLeft == models.PowerTimeUnlimited:
		return "Unlimited"
	case status.SecsLeft == models.PowerTimeUnknown, status.SecsLeft < 0:
		return "Calculating..."
	}

	minutes := status.SecsLeft / 60
	return fmt.Sprintf("%d:%02d remaining", minutes/60, minutes%60)
}
