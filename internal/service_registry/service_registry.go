package service_registry

import (
	"errors"
	"fmt"

	"github.com/benmeehan/batterymon/internal/metrics"
	"github.com/benmeehan/batterymon/internal/sensors"
	"github.com/benmeehan/batterymon/internal/services"
	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/rs/zerolog"
)

// Service is the lifecycle every background service implements.
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry manages the lifecycle of the background services.
type ServiceRegistry struct {
	services    map[string]Service // Stores registered services
	serviceKeys []string           // Maintains order of service registration
	started     []string
	fileClient  file.FileOperations
	Logger      zerolog.Logger
}

// NewServiceRegistry initializes a new service registry with dependencies.
func NewServiceRegistry(fileClient file.FileOperations, logger zerolog.Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services:   make(map[string]Service),
		fileClient: fileClient,
		Logger:     logger,
	}
}

// RegisterService adds a new service to the registry.
func (sr *ServiceRegistry) RegisterService(name string, svc Service) {
	if _, exists := sr.services[name]; exists {
		sr.Logger.Warn().Msgf("Service %s is already registered", name)
		return
	}
	sr.services[name] = svc
	sr.serviceKeys = append(sr.serviceKeys, name)
	sr.Logger.Info().Msgf("Registered service: %s", name)
}

// Names returns the registered service names in registration order.
func (sr *ServiceRegistry) Names() []string {
	return append([]string(nil), sr.serviceKeys...)
}

// StartServices initiates all registered services in order.
// If a service fails to start, it stops already started services.
func (sr *ServiceRegistry) StartServices() error {
	for _, name := range sr.serviceKeys {
		svc := sr.services[name]
		sr.Logger.Info().Msgf("Starting service: %s", name)
		if err := svc.Start(); err != nil {
			sr.Logger.Error().Err(err).Msgf("Failed to start service: %s", name)

			sr.Logger.Warn().Msg("Stopping already started services due to startup failure...")
			for i := len(sr.started) - 1; i >= 0; i-- {
				_ = sr.services[sr.started[i]].Stop()
			}
			sr.started = nil
			return fmt.Errorf("failed to start %s: %w", name, err)
		}
		sr.started = append(sr.started, name)
	}

	return nil
}

// StopServices stops the started services in reverse order.
func (sr *ServiceRegistry) StopServices() error {
	var stopErrors []error
	for i := len(sr.started) - 1; i >= 0; i-- {
		name := sr.started[i]
		if err := sr.services[name].Stop(); err != nil {
			stopErrors = append(stopErrors, fmt.Errorf("failed to stop %s: %w", name, err))
		}
	}
	sr.started = nil

	if len(stopErrors) > 0 {
		for _, e := range stopErrors {
			sr.Logger.Error().Err(e).Msg("Service stop failure")
		}
		return errors.Join(stopErrors...)
	}
	return nil
}

// RegisterServices registers the services enabled in the configuration.
func (sr *ServiceRegistry) RegisterServices(config *utils.Config, battery sensors.BatteryReader, m *metrics.Metrics) {
	servicesInOrder := []struct {
		name        string
		enabled     bool
		constructor func() Service
	}{
		{
			name:    "csv_log",
			enabled: true,
			constructor: func() Service {
				return services.NewCSVLogService(
					config.CSVFile,
					config.LogInterval,
					battery,
					sr.fileClient,
					sr.Logger.With().Str("service", "csv_log").Logger(),
				)
			},
		},
		{
			name:    "metrics_export",
			enabled: config.Metrics.Enabled && m != nil,
			constructor: func() Service {
				return services.NewMetricsExportService(
					config.Metrics.Textfile,
					config.Metrics.Interval,
					m,
					sr.Logger.With().Str("service", "metrics_export").Logger(),
				)
			},
		},
	}

	registered := []string{}
	for _, svc := range servicesInOrder {
		if svc.enabled {
			sr.RegisterService(svc.name, svc.constructor())
			registered = append(registered, svc.name)
		}
	}

	sr.Logger.Info().Msgf("Registered services in order: %v", registered)
}
