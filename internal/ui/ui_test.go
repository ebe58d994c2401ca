package ui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/benmeehan/batterymon/internal/sampler"
	"github.com/benmeehan/batterymon/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	cases := map[byte]ui.Action{
		' ': ui.ActionToggleLoad,
		's': ui.ActionToggleLoad,
		'+': ui.ActionMoreCores,
		'=': ui.ActionMoreCores,
		'-': ui.ActionFewerCores,
		'q': ui.ActionQuit,
		3:   ui.ActionQuit,
	}
	for key, want := range cases {
		got, ok := ui.ParseKey(key)
		assert.True(t, ok, "key %q", key)
		assert.Equal(t, want, got, "key %q", key)
	}

	_, ok := ui.ParseKey('x')
	assert.False(t, ok)
}

func TestReadActions(t *testing.T) {
	actions := ui.ReadActions(context.Background(), strings.NewReader("x+ -q"))

	var got []ui.Action
	for a := range actions {
		got = append(got, a)
	}
	assert.Equal(t, []ui.Action{ui.ActionMoreCores, ui.ActionToggleLoad, ui.ActionFewerCores, ui.ActionQuit}, got)
}

func TestTickLine(t *testing.T) {
	ticks := []sampler.Tick{{Index: 1, Label: "10:00:01"}, {Index: 2, Label: "10:00:02"}, {Index: 8, Label: "10:00:08"}}
	line := ui.TickLine(ticks, 10, 40)

	assert.Contains(t, line, "10:00:01")
	assert.NotContains(t, line, "10:00:02", "overlapping label is dropped")
	assert.Contains(t, line, "10:00:08")
	assert.LessOrEqual(t, len(line), 40)

	assert.Empty(t, ui.TickLine(nil, 0, 40))
}

func TestDashboard_Render(t *testing.T) {
	series := models.Series{}
	for i, p := range []float64{90, 89.5, 89} {
		series = series.Append(models.Sample{Time: "10:00:0" + string(rune('0'+i)), BatteryPercent: p})
	}

	var out bytes.Buffer
	d := ui.NewDashboard(&out, 80)
	err := d.Render(ui.View{
		Status:        ui.StatusLoading,
		Temperature:   "61.0°C",
		FanSpeed:      "N/A",
		Battery:       "89.0%",
		TimeRemaining: "1:02 remaining",
		CPUUsage:      "98.0%",
		Cores:         2,
		MaxCores:      8,
		ButtonLabel:   ui.StopLoadLabel,
		Chart:         sampler.BuildChart(series),
	})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Status: Loading CPU... (CPU 98.0%)")
	assert.Contains(t, s, "CPU Temperature: 61.0°C")
	assert.Contains(t, s, "Fan Speed: N/A")
	assert.Contains(t, s, "Battery: 89.0%")
	assert.Contains(t, s, "Time: 1:02 remaining")
	assert.Contains(t, s, "[ Stop Load ]")
	assert.Contains(t, s, "Battery Level Over Time")
	assert.Contains(t, s, "10:00:01")
}

func TestDashboard_RenderEmptyChart(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ui.NewDashboard(&out, 0).Render(ui.View{Status: ui.StatusIdle, ButtonLabel: ui.StartLoadLabel}))
	assert.Contains(t, out.String(), "waiting for battery data")
}
