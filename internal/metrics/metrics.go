// Package metrics keeps prometheus gauges for the latest sensor readings.
package metrics

import (
	"github.com/benmeehan/batterymon/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors in a private registry so tests and the textfile export do
// not see the default process collectors.
type Metrics struct {
	Registry *prometheus.Registry

	BatteryPercent prometheus.Gauge
	PowerPlugged   prometheus.Gauge
	SecondsLeft    prometheus.Gauge
	Temperature    prometheus.Gauge
	FanSpeed       prometheus.Gauge
	CPUUsage       prometheus.Gauge
	LoadWorkers    prometheus.Gauge
	Samples        prometheus.Counter
}

// New registers all gauges.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		BatteryPercent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_battery_percent",
			Help: "Charge of the first battery in percent.",
		}),
		PowerPlugged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_power_plugged",
			Help: "1 when running from AC power.",
		}),
		SecondsLeft: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_battery_seconds_left",
			Help: "Estimated seconds until empty; negative when unknown or unlimited.",
		}),
		Temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_temperature_celsius",
			Help: "First temperature sensor reading.",
		}),
		FanSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_fan_rpm",
			Help: "First fan sensor reading.",
		}),
		CPUUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_cpu_usage_percent",
			Help: "CPU utilisation across all cores.",
		}),
		LoadWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "batterymon_load_workers",
			Help: "Busy-loop worker processes currently running.",
		}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "batterymon_samples_total",
			Help: "Battery samples appended to the chart series.",
		}),
	}

	m.Registry.MustRegister(
		m.BatteryPercent, m.PowerPlugged, m.SecondsLeft,
		m.Temperature, m.FanSpeed, m.CPUUsage,
		m.LoadWorkers, m.Samples,
	)
	return m
}

// Observe updates the gauges from one snapshot. Readings that are absent keep their
// previous value.
func (m *Metrics) Observe(snap models.Snapshot, workers int) {
	if snap.Battery != nil {
		m.BatteryPercent.Set(snap.Battery.Percent)
		m.SecondsLeft.Set(float64(snap.Battery.SecsLeft))
		if snap.Battery.PowerPlugged {
			m.PowerPlugged.Set(1)
		} else {
			m.PowerPlugged.Set(0)
		}
		m.Samples.Inc()
	}
	if r, ok := models.FirstReading(snap.Temperatures); ok {
		m.Temperature.Set(r.Current)
	}
	if r, ok := models.FirstReading(snap.Fans); ok {
		m.FanSpeed.Set(r.Current)
	}
	if snap.CPUUsage != nil {
		m.CPUUsage.Set(*snap.CPUUsage)
	}
	m.LoadWorkers.Set(float64(workers))
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
