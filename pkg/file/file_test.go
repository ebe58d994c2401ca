package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benmeehan/batterymon/pkg/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileService_IsFileExists(t *testing.T) {
	fs := file.NewFileService()
	path := filepath.Join(t.TempDir(), "missing.csv")

	exists, err := fs.IsFileExists(path)
	assert.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	exists, err = fs.IsFileExists(path)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFileService_CSVRoundTrip(t *testing.T) {
	fs := file.NewFileService()
	path := filepath.Join(t.TempDir(), "log.csv")

	require.NoError(t, fs.CreateCSVFile(path, []string{"Time", "Battery Percentage"}))
	require.NoError(t, fs.AppendCSVRow(path, []string{"10:00:00", "73.456"}))
	require.NoError(t, fs.AppendCSVRow(path, []string{"10:00:15", "73.4"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Time,Battery Percentage\r\n10:00:00,73.456\r\n10:00:15,73.4\r\n", string(raw))

	records, err := fs.ReadCSVFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFileService_ReadYamlFile_Empty(t *testing.T) {
	fs := file.NewFileService()
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	var v struct {
		Name string `yaml:"name"`
	}
	assert.NoError(t, fs.ReadYamlFile(path, &v))
	assert.Empty(t, v.Name)
}
