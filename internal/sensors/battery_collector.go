package sensors

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/distatus/battery"
	"github.com/rs/zerolog"
)

// ErrNoBattery is returned when the machine reports no usable battery.
var ErrNoBattery = errors.New("no battery found")

// BatteryCollector reads the first battery reported by the OS.
type BatteryCollector struct {
	Logger zerolog.Logger
	// PowerSupplyDir is scanned for AC adapters ("online" file); empty disables the check.
	PowerSupplyDir string

	// getAll defaults to battery.GetAll
	getAll func() ([]*battery.Battery, error)
}

// NewBatteryCollector creates a collector backed by the OS battery interface.
func NewBatteryCollector(logger zerolog.Logger, powerSupplyDir string) *BatteryCollector {
	return &BatteryCollector{Logger: logger, PowerSupplyDir: powerSupplyDir, getAll: battery.GetAll}
}

func (b *BatteryCollector) Name() string {
	return "battery"
}

// Collect returns *models.BatteryStatus, or ErrNoBattery.
func (b *BatteryCollector) Collect(ctx context.Context) (any, error) {
	return b.ReadBattery(ctx)
}

// ReadBattery returns the state of the first battery with a known full capacity.
func (b *BatteryCollector) ReadBattery(ctx context.Context) (*models.BatteryStatus, error) {
	batteries, err := b.getAll()
	if err != nil && len(batteries) == 0 {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, bat := range batteries {
		if bat == nil || bat.Full <= 0 {
			continue
		}
		status := BatteryStatusFrom(bat, b.acOnline())
		b.Logger.Debug().
			Float64("percent", status.Percent).
			Bool("plugged", status.PowerPlugged).
			Int64("secs_left", status.SecsLeft).
			Msg("Battery collected")
		return status, nil
	}
	return nil, ErrNoBattery
}

func (b *BatteryCollector) Unit() string {
	return "percentage"
}

func (b *BatteryCollector) Description() string {
	return "Charge of the first battery, power source and estimated time remaining."
}

// BatteryStatusFrom converts a raw battery reading. acOnline reports an AC adapter seen
// independently of the battery state, since many batteries report Full or Unknown on AC.
func BatteryStatusFrom(bat *battery.Battery, acOnline bool) *models.BatteryStatus {
	percent := bat.Current / bat.Full * 100
	percent = math.Max(0, math.Min(100, percent))

	plugged := acOnline || bat.State == battery.Charging || bat.State == battery.Full

	secsLeft := models.PowerTimeUnknown
	switch {
	case plugged:
		secsLeft = models.PowerTimeUnlimited
	case bat.State == battery.Discharging && bat.ChargeRate > 0:
		secsLeft = int64(bat.Current / bat.ChargeRate * 3600)
	}

	return &models.BatteryStatus{
		Percent:      percent,
		PowerPlugged: plugged,
		SecsLeft:     secsLeft,
	}
}

func (b *BatteryCollector) acOnline() bool {
	if b.PowerSupplyDir == "" {
		return false
	}
	supplies, err := filepath.Glob(filepath.Join(b.PowerSupplyDir, "*", "online"))
	if err != nil {
		return false
	}
	for _, online := range supplies {
		if readTrimmed(online) != "1" {
			continue
		}
		kind := readTrimmed(filepath.Join(filepath.Dir(online), "type"))
		if kind == "Mains" || kind == "USB" || kind == "" {
			return true
		}
	}
	return false
}

// powerSupplyDir is the default AC adapter location on Linux.
func powerSupplyDir() string {
	const dir = "/sys/class/power_supply"
	if _, err := os.Stat(dir); err != nil {
		return ""
	}
	return dir
}
