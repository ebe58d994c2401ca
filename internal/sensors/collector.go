package sensors

import (
	"context"
)

// SensorCollector reads one category of hardware sensors.
type SensorCollector interface {
	Name() string                             // Name of the sensor category (e.g., "battery", "temperature")
	Collect(ctx context.Context) (any, error) // Read the sensor; the concrete type depends on the collector
	Unit() string                             // Unit of the reading (e.g., "celsius", "rpm")
	Description() string                      // Description of the reading
}

// CollectorRegistry keeps collectors in registration order.
type CollectorRegistry struct {
	collectors map[string]SensorCollector
	order      []string
}

// NewCollectorRegistry creates an empty registry.
func NewCollectorRegistry() *CollectorRegistry {
	return &CollectorRegistry{
		collectors: make(map[string]SensorCollector),
	}
}

// Register adds a collector, replacing any previous one with the same name.
func (r *CollectorRegistry) Register(collector SensorCollector) {
	name := collector.Name()
	if _, exists := r.collectors[name]; !exists {
		r.order = append(r.order, name)
	}
	r.collectors[name] = collector
}

// GetCollectors returns the collectors in registration order.
func (r *CollectorRegistry) GetCollectors() []SensorCollector {
	out := make([]SensorCollector, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.collectors[name])
	}
	return out
}
