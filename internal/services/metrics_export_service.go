package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TextfileWriter writes collected metrics to a file.
type TextfileWriter interface {
	WriteTextfile(path string) error
}

// MetricsExportService periodically writes the prometheus gauges to a node_exporter
// textfile. The last write happens on Stop so the file reflects the final readings.
type MetricsExportService struct {
	path     string
	interval time.Duration
	writer   TextfileWriter
	logger   zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMetricsExportService initializes and returns a new instance of MetricsExportService.
func NewMetricsExportService(path string, interval time.Duration, writer TextfileWriter, logger zerolog.Logger) *MetricsExportService {
	return &MetricsExportService{
		path:     path,
		interval: interval,
		writer:   writer,
		logger:   logger,
	}
}

// Start launches the export loop.
func (m *MetricsExportService) Start() error {
	if m.ctx != nil {
		m.logger.Warn().Msg("MetricsExportService is already running")
		return errors.New("metrics export service is already running")
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.wg.Add(1)
	go m.runExportLoop()

	m.logger.Info().Str("textfile", m.path).Msg("MetricsExportService started successfully")
	return nil
}

// Stop stops the loop and writes the textfile one last time.
func (m *MetricsExportService) Stop() error {
	if m.ctx == nil {
		m.logger.Warn().Msg("MetricsExportService is not running")
		return errors.New("metrics export service is not running")
	}

	m.cancel()
	m.wg.Wait()
	m.ctx = nil
	m.cancel = nil

	if err := m.writer.WriteTextfile(m.path); err != nil {
		return err
	}
	m.logger.Info().Msg("MetricsExportService stopped successfully")
	return nil
}

func (m *MetricsExportService) runExportLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.writer.WriteTextfile(m.path); err != nil {
				m.logger.Error().Err(err).Msg("Failed to write metrics textfile")
			}
		case <-m.ctx.Done():
			return
		}
	}
}
