package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/benmeehan/batterymon/internal/app"
	"github.com/benmeehan/batterymon/internal/loadgen"
	"github.com/benmeehan/batterymon/internal/metrics"
	"github.com/benmeehan/batterymon/internal/sensors"
	"github.com/benmeehan/batterymon/internal/service_registry"
	"github.com/benmeehan/batterymon/internal/ui"
	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/spf13/cobra"
)

func runMonitor(cmd *cobra.Command, args []string) error {
	fileClient := file.NewFileService()

	config, err := utils.LoadConfig(configFile, fileClient)
	if err != nil {
		return err
	}

	log, logCloser, err := utils.NewLogger(config.Log.Level, config.Log.File, os.Stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := sensors.NewSystemSource(config.Sensors.HwmonDir, config.Sensors.Timeout, log.With().Str("component", "sensors").Logger())
	defer source.Close()

	m := metrics.New()

	serviceRegistry := service_registry.NewServiceRegistry(fileClient, log)
	serviceRegistry.RegisterServices(config, source, m)
	if err := serviceRegistry.StartServices(); err != nil {
		log.Error().Err(err).Msg("Failed to start services")
		return err
	}
	defer func() {
		if err := serviceRegistry.StopServices(); err != nil {
			log.Error().Err(err).Msg("Failed to stop services")
		}
	}()

	load := loadgen.New(loadgen.SelfCommand, log.With().Str("component", "loadgen").Logger())

	terminal, err := ui.EnterRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer terminal.Restore()

	dashboard := ui.NewDashboard(os.Stdout, ui.Width(os.Stdout, 80))
	monitor := app.NewMonitor(
		source,
		load,
		dashboard,
		m,
		config.SampleInterval,
		loadgen.MaxWorkers(ctx),
		log.With().Str("component", "monitor").Logger(),
	)

	log.Info().Str("csv_file", config.CSVFile).Msg("Starting battery monitor")
	err = monitor.Run(ctx, ui.ReadActions(ctx, os.Stdin))
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("Shutting down gracefully...")
		return nil
	}
	return err
}
