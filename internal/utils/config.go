package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/benmeehan/batterymon/pkg/file"
)

// DefaultConfigFile is read from the working directory when no --config flag is given.
const DefaultConfigFile = "batterymon.yaml"

// Config represents the structure of the configuration file.
type Config struct {
	CSVFile        string        `yaml:"csv_file"`        // Append-only battery log
	SampleInterval time.Duration `yaml:"sample_interval"` // Dashboard refresh and chart sampling
	LogInterval    time.Duration `yaml:"log_interval"`    // Interval between CSV rows

	Sensors struct {
		Timeout  time.Duration `yaml:"timeout"`   // Upper bound for one sensor snapshot
		HwmonDir string        `yaml:"hwmon_dir"` // Root of the hwmon sysfs tree (fans)
	} `yaml:"sensors"`

	Log struct {
		Level string `yaml:"level"` // zerolog level name
		File  string `yaml:"file"`  // Log destination; the terminal belongs to the dashboard
	} `yaml:"log"`

	Metrics struct {
		Enabled  bool          `yaml:"enabled"`  // Enable/disable the prometheus textfile export
		Textfile string        `yaml:"textfile"` // node_exporter textfile collector target
		Interval time.Duration `yaml:"interval"` // Interval between textfile writes
	} `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	config := &Config{
		CSVFile:        "battery_log.csv",
		SampleInterval: time.Second,
		LogInterval:    15 * time.Second,
	}
	config.Sensors.Timeout = 800 * time.Millisecond
	config.Sensors.HwmonDir = "/sys/class/hwmon"
	config.Log.Level = "info"
	config.Log.File = "batterymon.log"
	config.Metrics.Textfile = "batterymon.prom"
	config.Metrics.Interval = 15 * time.Second
	return config
}

// LoadConfig loads the YAML configuration from the specified file on top of DefaultConfig.
// A missing file is not an error; the defaults are returned as is.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	config := DefaultConfig()

	exists, err := fileClient.IsFileExists(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		return config, nil
	}

	if err := fileClient.ReadYamlFile(filename, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration can drive the monitor.
func (c *Config) Validate() error {
	if c.CSVFile == "" {
		return errors.New("csv_file must not be empty")
	}
	if c.SampleInterval <= 0 {
		return errors.New("sample_interval must be positive")
	}
	if c.LogInterval <= 0 {
		return errors.New("log_interval must be positive")
	}
	if c.Sensors.Timeout <= 0 {
		return errors.New("sensors.timeout must be positive")
	}
	if c.Metrics.Enabled {
		if c.Metrics.Textfile == "" {
			return errors.New("metrics.textfile must be set when metrics are enabled")
		}
		if c.Metrics.Interval <= 0 {
			return errors.New("metrics.interval must be positive")
		}
	}
	return nil
}
