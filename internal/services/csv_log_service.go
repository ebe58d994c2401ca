package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/benmeehan/batterymon/internal/sensors"
	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/rs/zerolog"
)

// CSVHeader is written once when the log file is created.
var CSVHeader = []string{"Time", "Battery Percentage"}

// FormatPercent writes p with every significant digit and at least one decimal, so 80
// is logged as 80.0 and 73.456 stays 73.456.
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// CSVLogService appends the battery percentage to a CSV file at a fixed interval.
// It is the only writer of the file.
type CSVLogService struct {
	filePath   string
	interval   time.Duration
	battery    sensors.BatteryReader
	fileClient file.FileOperations
	logger     zerolog.Logger
	now        func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCSVLogService initializes and returns a new instance of CSVLogService.
func NewCSVLogService(
	filePath string,
	interval time.Duration,
	battery sensors.BatteryReader,
	fileClient file.FileOperations,
	logger zerolog.Logger,
) *CSVLogService {
	return &CSVLogService{
		filePath:   filePath,
		interval:   interval,
		battery:    battery,
		fileClient: fileClient,
		logger:     logger,
		now:        time.Now,
	}
}

// Initialize creates the log file with its header when it does not exist yet.
// Running it again against an existing file leaves the file untouched.
func (c *CSVLogService) Initialize() error {
	exists, err := c.fileClient.IsFileExists(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to check log file: %w", err)
	}
	if exists {
		c.logger.Debug().Str("file", c.filePath).Msg("CSV log already exists")
		return nil
	}

	if err := c.fileClient.CreateCSVFile(c.filePath, CSVHeader); err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	c.logger.Info().Str("file", c.filePath).Msg("CSV log created")
	return nil
}

// LogOnce reads the battery and appends one row. It reports whether a row was written;
// an unavailable battery is not an error.
func (c *CSVLogService) LogOnce(ctx context.Context) (bool, error) {
	status, err := c.battery.ReadBattery(ctx)
	if err != nil || status == nil {
		c.logger.Debug().Err(err).Msg("Battery unavailable, skipping log row")
		return false, nil
	}

	row := []string{
		c.now().Format(models.TimeLayout),
		FormatPercent(status.Percent),
	}
	if err := c.fileClient.AppendCSVRow(c.filePath, row); err != nil {
		return false, fmt.Errorf("failed to append log row: %w", err)
	}

	c.logger.Debug().Strs("row", row).Msg("Battery logged")
	return true, nil
}

// Start initializes the file and launches the logging loop.
func (c *CSVLogService) Start() error {
	if c.ctx != nil {
		c.logger.Warn().Msg("CSVLogService is already running")
		return errors.New("csv log service is already running")
	}

	if err := c.Initialize(); err != nil {
		return err
	}

	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.runLogLoop()
	}()

	c.logger.Info().Str("file", c.filePath).Dur("interval", c.interval).Msg("CSVLogService started successfully")
	return nil
}

// Stop gracefully stops the logging loop.
func (c *CSVLogService) Stop() error {
	if c.ctx == nil {
		c.logger.Warn().Msg("CSVLogService is not running")
		return errors.New("csv log service is not running")
	}

	c.cancel()
	c.wg.Wait()

	c.ctx = nil
	c.cancel = nil

	c.logger.Info().Msg("CSVLogService stopped successfully")
	return nil
}

func (c *CSVLogService) runLogLoop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := c.LogOnce(c.ctx); err != nil {
				c.logger.Error().Err(err).Msg("Failed to log battery")
			}
		case <-c.ctx.Done():
			c.logger.Info().Msg("CSVLogService stopping gracefully")
			return
		}
	}
}
