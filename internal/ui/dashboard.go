package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	clearScreen = "\033[2J\033[H"
	colorReset  = "\033[0m"
	colorDim    = "\033[2m"
	colorBold   = "\033[1m"
	newline     = "\r\n" // the terminal is in raw mode

	chartHeight = 10 // one row per grid step on a 0-100 axis
	// columns asciigraph spends on the y axis labels for values up to 100
	axisWidth = 7
)

// Dashboard renders views to a terminal.
type Dashboard struct {
	out   io.Writer
	width int
}

// NewDashboard creates a dashboard writing to out, width columns wide.
func NewDashboard(out io.Writer, width int) *Dashboard {
	if width < 40 {
		width = 80
	}
	return &Dashboard{out: out, width: width}
}

// Render redraws the whole screen.
func (d *Dashboard) Render(v View) error {
	w := bufio.NewWriter(d.out)

	w.WriteString(clearScreen)
	w.WriteString(colorBold + "Battery Life Tester" + colorReset + newline + newline)

	cores := fmt.Sprintf("[ %d ]", v.Cores)
	if !v.CoresEditable {
		cores = colorDim + cores + colorReset
	}
	fmt.Fprintf(w, "Number of cores: %s (1-%d)   [ %s ]%s", cores, v.MaxCores, v.ButtonLabel, newline)
	w.WriteString(colorDim + "space: toggle load   +/-: cores   q: quit" + colorReset + newline + newline)

	status := v.Status
	if v.CPUUsage != "" {
		status = fmt.Sprintf("%s (CPU %s)", v.Status, v.CPUUsage)
	}
	w.WriteString(StatusPrefix + status + newline)
	w.WriteString(TemperaturePrefix + v.Temperature + newline)
	w.WriteString(FanPrefix + v.FanSpeed + newline)
	w.WriteString(BatteryPrefix + v.Battery + newline)
	w.WriteString(TimeRemainingPrefix + v.TimeRemaining + newline + newline)

	w.WriteString(d.chart(v))
	return w.Flush()
}

func (d *Dashboard) chart(v View) string {
	c := v.Chart
	if len(c.Values) == 0 {
		return colorDim + "(waiting for battery data)" + colorReset + newline
	}

	data := c.Values
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	plotWidth := d.width - axisWidth - 1

	plot := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(c.YMin),
		asciigraph.UpperBound(c.YMax),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s (%s vs %s)", c.Title, c.YLabel, c.XLabel)),
	)

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(plot, "\n", newline))
	b.WriteString(newline)
	b.WriteString(strings.Repeat(" ", axisWidth))
	b.WriteString(TickLine(c.Ticks, len(c.Labels), plotWidth))
	b.WriteString(newline)
	return b.String()
}
