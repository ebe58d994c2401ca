// Package ui draws the monitor in a terminal and turns key presses into actions.
package ui

import (
	"github.com/benmeehan/batterymon/internal/sampler"
)

// Label prefixes of the read-only displays.
const (
	StatusPrefix        = "Status: "
	TemperaturePrefix   = "CPU Temperature: "
	FanPrefix           = "Fan Speed: "
	BatteryPrefix       = "Battery: "
	TimeRemainingPrefix = "Time: "
)

// Toggle button labels.
const (
	StartLoadLabel = "Start Load"
	StopLoadLabel  = "Stop Load"
)

// Status texts.
const (
	StatusIdle    = "Idle"
	StatusLoading = "Loading CPU..."
)

// View is the complete state of the window at one moment.
type View struct {
	Status        string
	Temperature   string
	FanSpeed      string
	Battery       string
	TimeRemaining string
	CPUUsage      string

	Cores         int
	MaxCores      int
	CoresEditable bool
	ButtonLabel   string

	Chart sampler.Chart
}
