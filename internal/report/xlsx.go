package report

import (
	"fmt"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	samplesSheet = "samples"
	summarySheet = "summary"
)

// WriteXLSX writes the samples, a line chart and the summary to a workbook.
func WriteXLSX(path string, samples []models.Sample, summary Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", samplesSheet)
	f.NewSheet(summarySheet)

	if err := f.SetSheetRow(samplesSheet, "A1", &[]any{"Time", "Battery Percentage"}); err != nil {
		return err
	}
	for i, s := range samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(samplesSheet, cell, &[]any{s.Time, s.BatteryPercent}); err != nil {
			return err
		}
	}

	lastRow := len(samples) + 1
	minY, maxY := 0.0, 100.0
	err := f.AddChart(samplesSheet, "D2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", samplesSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", samplesSheet, lastRow),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", samplesSheet, lastRow),
		}},
		Title: []excelize.RichTextRun{{Text: "Battery Level Over Time"}},
		YAxis: excelize.ChartAxis{Minimum: &minY, Maximum: &maxY},
	})
	if err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	rows := [][]any{
		{"Samples", summary.Samples},
		{"Start", summary.StartTime},
		{"End", summary.EndTime},
		{"Start %", summary.StartPercent},
		{"End %", summary.EndPercent},
		{"Elapsed", summary.Elapsed.String()},
		{"Drain %/h", summary.DrainPerHour},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
