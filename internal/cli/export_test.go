package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		exportInput, exportOutput = "", "battery_report.xlsx"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExportCommand_XLSX(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "battery_log.csv")
	require.NoError(t, os.WriteFile(input, []byte("Time,Battery Percentage\n10:00:00,80\n11:00:00,70\n"), 0644))
	output := filepath.Join(dir, "report.xlsx")

	out, err := runRoot(t, "export", "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "2 samples")
	assert.Contains(t, out, "10.00 %/h")
	assert.FileExists(t, output)
}

func TestExportCommand_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "battery_log.csv")
	require.NoError(t, os.WriteFile(input, []byte("Time,Battery Percentage\n10:00:00,80\n"), 0644))

	_, err := runRoot(t, "export", "--input", input, "--output", filepath.Join(dir, "report.txt"))
	assert.ErrorContains(t, err, "unsupported report format")
}
