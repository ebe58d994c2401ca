package models

// Reserved SecsLeft values reported instead of a literal duration.
const (
	PowerTimeUnknown   int64 = -1 // the OS has not estimated a remaining time yet
	PowerTimeUnlimited int64 = -2 // running from AC, no rundown in progress
)

// BatteryStatus is the state of the first battery found on the machine.
type BatteryStatus struct {
	Percent      float64 `json:"percent"`       // 0..100
	PowerPlugged bool    `json:"power_plugged"` // AC adapter connected
	SecsLeft     int64   `json:"secs_left"`     // seconds until empty, or one of the PowerTime sentinels
}

// SensorReading is one value reported by a sensor chip.
type SensorReading struct {
	Label   string  `json:"label"`
	Current float64 `json:"current"`
}

// SensorGroup holds the readings of one sensor chip in discovery order.
type SensorGroup struct {
	Name     string          `json:"name"`
	Readings []SensorReading `json:"readings"`
}

// Snapshot is everything read from the sensors during one tick.
// A nil Battery means the machine reported no battery.
type Snapshot struct {
	Battery      *BatteryStatus `json:"battery,omitempty"`
	Temperatures []SensorGroup  `json:"temperatures,omitempty"`
	Fans         []SensorGroup  `json:"fans,omitempty"`
	CPUUsage     *float64       `json:"cpu_usage,omitempty"`
}

// FirstReading returns the first reading of the first group, if there is one.
func FirstReading(groups []SensorGroup) (SensorReading, bool) {
	if len(groups) == 0 || len(groups[0].Readings) == 0 {
		return SensorReading{}, false
	}
	return groups[0].Readings[0], true
}
