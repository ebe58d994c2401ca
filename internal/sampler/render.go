package sampler

import (
	"time"

	"github.com/benmeehan/batterymon/internal/models"
)

// Chart display constants.
const (
	ChartTitle     = "Battery Level Over Time"
	ChartXLabel    = "Time"
	ChartYLabel    = "Battery %"
	ChartYMin      = 0.0
	ChartYMax      = 100.0
	ChartMaxTicks  = 10
	ChartGridStep  = 10.0
	ChartLabelTilt = 45
)

// Tick is one labelled position on the x axis.
type Tick struct {
	Index int
	Label string
}

// Chart describes how the battery history is drawn.
type Chart struct {
	Title     string
	XLabel    string
	YLabel    string
	Labels    []string
	Values    []float64
	YMin      float64
	YMax      float64
	Ticks     []Tick
	LabelTilt int
	GridStep  float64
	HideTop   bool
	HideRight bool
}

// Frame is everything the dashboard shows after one tick.
type Frame struct {
	Temperature   string
	FanSpeed      string
	Battery       string
	TimeRemaining string
	CPUUsage      string

	// Redraw is set when a sample was appended and the chart changed.
	Redraw bool
	Chart  Chart
}

// Render turns one sensor snapshot into display text and, when the battery is readable,
// appends a sample to series. It has no side effects; the returned series replaces the
// caller's.
func Render(snap models.Snapshot, series models.Series, now time.Time) (models.Series, Frame) {
	frame := Frame{
		Temperature:   FormatTemperature(snap.Temperatures),
		FanSpeed:      FormatFan(snap.Fans),
		Battery:       NotAvailable,
		TimeRemaining: NotAvailable,
		CPUUsage:      NotAvailable,
	}
	if snap.CPUUsage != nil {
		frame.CPUUsage = FormatPercent(*snap.CPUUsage)
	}

	if snap.Battery != nil {
		frame.Battery = FormatPercent(snap.Battery.Percent)
		frame.TimeRemaining = FormatTimeRemaining(*snap.Battery)
		series = series.Append(models.Sample{
			Time:           now.Format(models.TimeLayout),
			BatteryPercent: snap.Battery.Percent,
		})
		frame.Redraw = true
	}

	frame.Chart = BuildChart(series)
	return series, frame
}

// BuildChart lays out the battery history on a fixed 0–100 axis.
func BuildChart(series models.Series) Chart {
	return Chart{
		Title:     ChartTitle,
		XLabel:    ChartXLabel,
		YLabel:    ChartYLabel,
		Labels:    series.Times,
		Values:    series.Percents,
		YMin:      ChartYMin,
		YMax:      ChartYMax,
		Ticks:     PrunedTicks(series.Times, ChartMaxTicks),
		LabelTilt: ChartLabelTilt,
		GridStep:  ChartGridStep,
		HideTop:   true,
		HideRight: true,
	}
}

// PrunedTicks picks at most maxTicks evenly spaced labels, dropping the first and last
// positions so edge labels do not collide with the axes. Series of up to two points keep
// every label since pruning would leave nothing.
func PrunedTicks(labels []string, maxTicks int) []Tick {
	n := len(labels)
	if n == 0 || maxTicks < 1 {
		return nil
	}
	if n <= 2 {
		ticks := make([]Tick, n)
		for i, l := range labels {
			ticks[i] = Tick{Index: i, Label: l}
		}
		return ticks
	}

	// bins+1 candidate positions including both ends, then prune the ends.
	bins := maxTicks + 1
	if bins > n-1 {
		bins = n - 1
	}

	var ticks []Tick
	last := -1
	for b := 1; b < bins; b++ {
		i := b * (n - 1) / bins
		if i == last || i <= 0 || i >= n-1 {
			continue
		}
		ticks = append(ticks, Tick{Index: i, Label: labels[i]})
		last = i
	}
	if len(ticks) == 0 {
		mid := (n - 1) / 2
		ticks = append(ticks, Tick{Index: mid, Label: labels[mid]})
	}
	return ticks
}
