// Package app runs the monitor's event loop: sampling ticks and user actions are handled
// on a single goroutine that owns all dashboard state.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/benmeehan/batterymon/internal/loadgen"
	"github.com/benmeehan/batterymon/internal/metrics"
	"github.com/benmeehan/batterymon/internal/models"
	"github.com/benmeehan/batterymon/internal/sampler"
	"github.com/benmeehan/batterymon/internal/sensors"
	"github.com/benmeehan/batterymon/internal/ui"
	"github.com/rs/zerolog"
)

// LoadController starts and stops the CPU load.
type LoadController interface {
	Start(n int) error
	Stop() error
	State() loadgen.State
	Workers() int
}

// Renderer draws a view.
type Renderer interface {
	Render(v ui.View) error
}

// AppState is everything the dashboard shows, owned by the event loop.
type AppState struct {
	Series   models.Series
	Frame    sampler.Frame
	Cores    int
	MaxCores int
	Status   string
}

// Monitor ties the sensors, the load generator and the dashboard together.
type Monitor struct {
	source   sensors.Source
	load     LoadController
	renderer Renderer
	metrics  *metrics.Metrics
	interval time.Duration
	logger   zerolog.Logger
	now      func() time.Time

	state AppState
}

// NewMonitor creates a monitor in the idle state with one core selected. m may be nil.
func NewMonitor(
	source sensors.Source,
	load LoadController,
	renderer Renderer,
	m *metrics.Metrics,
	interval time.Duration,
	maxCores int,
	logger zerolog.Logger,
) *Monitor {
	if maxCores < 1 {
		maxCores = 1
	}
	frame := sampler.Frame{
		Temperature:   sampler.NotAvailable,
		FanSpeed:      sampler.NotAvailable,
		Battery:       sampler.NotAvailable,
		TimeRemaining: sampler.NotAvailable,
		CPUUsage:      sampler.NotAvailable,
		Chart:         sampler.BuildChart(models.Series{}),
	}
	return &Monitor{
		source:   source,
		load:     load,
		renderer: renderer,
		metrics:  m,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		state: AppState{
			Frame:    frame,
			Cores:    1,
			MaxCores: maxCores,
			Status:   ui.StatusIdle,
		},
	}
}

// State returns a copy of the current state.
func (m *Monitor) State() AppState {
	return m.state
}

// Apply renders one snapshot into the state.
func (m *Monitor) Apply(snap models.Snapshot) {
	series, frame := sampler.Render(snap, m.state.Series, m.now())
	m.state.Series = series
	m.state.Frame = frame

	if m.metrics != nil {
		m.metrics.Observe(snap, m.load.Workers())
	}
	if frame.Redraw {
		m.logger.Debug().Int("samples", series.Len()).Str("battery", frame.Battery).Msg("Sample appended")
	}
}

// ToggleLoad starts the load with the selected core count, or stops it.
func (m *Monitor) ToggleLoad() error {
	if m.load.State() == loadgen.Loading {
		if err := m.load.Stop(); err != nil {
			return err
		}
		m.state.Status = ui.StatusIdle
		return nil
	}

	if err := m.load.Start(m.state.Cores); err != nil {
		return err
	}
	m.state.Status = ui.StatusLoading
	return nil
}

// SetCores changes the worker count for the next start. It is ignored while loading and
// clamped to 1..MaxCores.
func (m *Monitor) SetCores(n int) {
	if m.load.State() == loadgen.Loading {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > m.state.MaxCores {
		n = m.state.MaxCores
	}
	m.state.Cores = n
}

// Handle applies one user action and reports whether the monitor should quit.
func (m *Monitor) Handle(action ui.Action) bool {
	switch action {
	case ui.ActionToggleLoad:
		if err := m.ToggleLoad(); err != nil {
			m.logger.Error().Err(err).Msg("Failed to toggle load")
		}
	case ui.ActionMoreCores:
		m.SetCores(m.state.Cores + 1)
	case ui.ActionFewerCores:
		m.SetCores(m.state.Cores - 1)
	case ui.ActionQuit:
		return true
	}
	return false
}

// View builds what the dashboard should show for the current state.
func (m *Monitor) View() ui.View {
	loading := m.load.State() == loadgen.Loading

	v := ui.View{
		Status:        m.state.Status,
		Temperature:   m.state.Frame.Temperature,
		FanSpeed:      m.state.Frame.FanSpeed,
		Battery:       m.state.Frame.Battery,
		TimeRemaining: m.state.Frame.TimeRemaining,
		Cores:         m.state.Cores,
		MaxCores:      m.state.MaxCores,
		CoresEditable: !loading,
		ButtonLabel:   ui.StartLoadLabel,
		Chart:         m.state.Frame.Chart,
	}
	if loading {
		v.ButtonLabel = ui.StopLoadLabel
		v.CPUUsage = m.state.Frame.CPUUsage
	}
	return v
}

func (m *Monitor) render() {
	if err := m.renderer.Render(m.View()); err != nil {
		m.logger.Error().Err(err).Msg("Failed to render dashboard")
	}
}

// poll reads a snapshot right away and then every interval, handing each one to the
// event loop. Slow sensors delay the next snapshot, never the key handling.
func (m *Monitor) poll(ctx context.Context, snaps chan<- models.Snapshot) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		snap := m.source.Snapshot(ctx)
		select {
		case snaps <- snap:
		case <-ctx.Done():
			return
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// Run samples every interval and applies actions until ctx is done or a quit action
// arrives. A closed actions channel means the input is gone; sampling carries on until
// ctx is done. The load is always stopped on return.
func (m *Monitor) Run(ctx context.Context, actions <-chan ui.Action) error {
	pollCtx, cancelPoll := context.WithCancel(ctx)
	snaps := make(chan models.Snapshot)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.poll(pollCtx, snaps)
	}()

	defer func() {
		cancelPoll()
		wg.Wait()
		if err := m.load.Stop(); err != nil {
			m.logger.Error().Err(err).Msg("Failed to stop load on exit")
		}
	}()

	m.logger.Info().Dur("interval", m.interval).Int("max_cores", m.state.MaxCores).Msg("Monitor started")
	m.render()

	for {
		select {
		case snap := <-snaps:
			m.Apply(snap)
			m.render()
		case action, ok := <-actions:
			if !ok {
				m.logger.Info().Msg("Input closed, keyboard controls disabled")
				actions = nil
				continue
			}
			if m.Handle(action) {
				m.logger.Info().Msg("Monitor stopping")
				return nil
			}
			m.render()
		case <-ctx.Done():
			m.logger.Info().Msg("Monitor stopping")
			return ctx.Err()
		}
	}
}
