package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/benmeehan/batterymon/internal/report"
	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/spf13/cobra"
)

var (
	exportInput  string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "battery log to read (default: csv_file from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "battery_report.xlsx", "report file, .xlsx or .pdf")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a rundown report from the battery log",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	fileClient := file.NewFileService()

	input := exportInput
	if input == "" {
		config, err := utils.LoadConfig(configFile, fileClient)
		if err != nil {
			return err
		}
		input = config.CSVFile
	}

	samples, err := report.LoadSamples(input, fileClient)
	if err != nil {
		return err
	}
	summary, err := report.Summarize(samples)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(exportOutput)); ext {
	case ".xlsx":
		err = report.WriteXLSX(exportOutput, samples, summary)
	case ".pdf":
		err = report.WritePDF(exportOutput, samples, summary)
	default:
		return fmt.Errorf("unsupported report format %q (use .xlsx or .pdf)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d samples, %.1f%% -> %.1f%% over %s (%.2f %%/h)\n",
		exportOutput, summary.Samples, summary.StartPercent, summary.EndPercent, summary.Elapsed, summary.DrainPerHour)
	return nil
}
