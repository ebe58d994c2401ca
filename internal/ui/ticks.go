package ui

import (
	"strings"

	"github.com/benmeehan/batterymon/internal/sampler"
)

// TickLine places tick labels under a plot width columns wide showing n points. Labels
// that would overlap the previous one are dropped.
func TickLine(ticks []sampler.Tick, n, width int) string {
	if n < 1 || width < 1 {
		return ""
	}

	line := []rune(strings.Repeat(" ", width))
	next := 0
	for _, tick := range ticks {
		col := 0
		if n > 1 {
			col = tick.Index * (width - 1) / (n - 1)
		}
		label := []rune(tick.Label)
		start := col - len(label)/2
		if start < next {
			continue
		}
		if start+len(label) > width {
			start = width - len(label)
		}
		if start < next || start < 0 {
			continue
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}
