package report

import (
	"fmt"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// maxPDFRows caps the sample table; the summary covers the whole log.
const maxPDFRows = 200

// WritePDF renders the summary and the first samples as a one-document report.
func WritePDF(path string, samples []models.Sample, summary Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Battery Rundown Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Samples: %d", summary.Samples),
		fmt.Sprintf("Start: %s at %.1f%%", summary.StartTime, summary.StartPercent),
		fmt.Sprintf("End: %s at %.1f%%", summary.EndTime, summary.EndPercent),
		fmt.Sprintf("Elapsed: %s", summary.Elapsed),
		fmt.Sprintf("Drain: %.2f %%/h", summary.DrainPerHour),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Battery Percentage", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, s := range samples {
		if i == maxPDFRows {
			pdf.Cell(0, 6, fmt.Sprintf("... %d more samples", len(samples)-maxPDFRows))
			pdf.Ln(6)
			break
		}
		pdf.CellFormat(40, 6, s.Time, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%g", s.BatteryPercent), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}
