package sensors

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/rs/zerolog"
)

// ErrReadInFlight is returned when an earlier read of the same sensor has not returned yet.
var ErrReadInFlight = errors.New("previous sensor read still in flight")

// BatteryReader reads the battery alone.
type BatteryReader interface {
	ReadBattery(ctx context.Context) (*models.BatteryStatus, error)
}

// Source produces one snapshot of every sensor per call.
type Source interface {
	BatteryReader
	Snapshot(ctx context.Context) models.Snapshot
}

// SystemSource reads every registered collector concurrently, bounded by a timeout.
// A collector that ignores its context holds at most one pool worker: it is skipped on
// later snapshots until its call returns.
type SystemSource struct {
	registry   *CollectorRegistry
	battery    BatteryReader
	timeout    time.Duration
	workerPool *utils.WorkerPool
	logger     zerolog.Logger

	mu          sync.Mutex
	inFlight    map[string]bool
	batteryBusy atomic.Bool
}

type collectResult struct {
	name  string
	value any
	err   error
}

// NewSystemSource registers the default collectors for this host.
func NewSystemSource(hwmonDir string, timeout time.Duration, logger zerolog.Logger) *SystemSource {
	batteryCollector := NewBatteryCollector(logger, powerSupplyDir())

	registry := NewCollectorRegistry()
	registry.Register(batteryCollector)
	registry.Register(NewTemperatureCollector(logger))
	registry.Register(&FanCollector{Logger: logger, HwmonDir: hwmonDir})
	registry.Register(&CPUCollector{Logger: logger})

	return NewSource(registry, batteryCollector, timeout, logger)
}

// NewSource builds a source over an explicit registry. battery serves ReadBattery.
func NewSource(registry *CollectorRegistry, battery BatteryReader, timeout time.Duration, logger zerolog.Logger) *SystemSource {
	return &SystemSource{
		registry:   registry,
		battery:    battery,
		timeout:    timeout,
		workerPool: utils.NewWorkerPool(len(registry.GetCollectors())),
		logger:     logger,
		inFlight:   make(map[string]bool),
	}
}

// ReadBattery reads the battery, bounded by the source timeout. While a timed out read
// is still blocked, further calls fail fast with ErrReadInFlight.
func (s *SystemSource) ReadBattery(ctx context.Context) (*models.BatteryStatus, error) {
	if !s.batteryBusy.CompareAndSwap(false, true) {
		return nil, ErrReadInFlight
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		status *models.BatteryStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := s.battery.ReadBattery(ctx)
		s.batteryBusy.Store(false)
		done <- result{status, err}
	}()

	select {
	case r := <-done:
		return r.status, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot collects all sensors. Collectors that fail or miss the timeout leave their
// part of the snapshot empty.
func (s *SystemSource) Snapshot(ctx context.Context) models.Snapshot {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	collectors := s.registry.GetCollectors()
	results := make(chan collectResult, len(collectors))

	pending := 0
	for _, collector := range collectors {
		collector := collector
		name := collector.Name()
		if !s.acquire(name) {
			s.logger.Debug().Str("collector", name).Msg("Sensor read still in flight, skipping")
			continue
		}
		err := s.workerPool.Submit(ctx, func() {
			value, err := collector.Collect(ctx)
			s.release(name)
			results <- collectResult{name: name, value: value, err: err}
		})
		if err != nil {
			s.release(name)
			s.logger.Warn().Err(err).Str("collector", name).Msg("Failed to schedule sensor read")
			continue
		}
		pending++
	}

	var snap models.Snapshot
	for ; pending > 0; pending-- {
		select {
		case r := <-results:
			s.apply(&snap, r)
		case <-ctx.Done():
			s.logger.Warn().Err(ctx.Err()).Int("pending", pending).Msg("Sensor snapshot timed out")
			return snap
		}
	}
	return snap
}

func (s *SystemSource) acquire(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[name] {
		return false
	}
	s.inFlight[name] = true
	return true
}

func (s *SystemSource) release(name string) {
	s.mu.Lock()
	delete(s.inFlight, name)
	s.mu.Unlock()
}

func (s *SystemSource) apply(snap *models.Snapshot, r collectResult) {
	if r.err != nil {
		s.logger.Debug().Err(r.err).Str("collector", r.name).Msg("Sensor unavailable")
		return
	}

	switch v := r.value.(type) {
	case *models.BatteryStatus:
		snap.Battery = v
	case float64:
		snap.CPUUsage = &v
	case []models.SensorGroup:
		switch r.name {
		case "temperature":
			snap.Temperatures = v
		case "fan":
			snap.Fans = v
		}
	default:
		s.logger.Debug().Str("collector", r.name).Msgf("Ignoring reading of type %T", r.value)
	}
}

// Close releases the collector workers.
func (s *SystemSource) Close() {
	s.workerPool.Shutdown()
}
