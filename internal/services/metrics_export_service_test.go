package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/benmeehan/batterymon/internal/mocks"
	"github.com/benmeehan/batterymon/internal/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricsExportService_WritesPeriodically verifies the textfile is written by the loop and on stop.
func TestMetricsExportService_WritesPeriodically(t *testing.T) {
	writer := new(mocks.TextfileWriter)
	writer.On("WriteTextfile", "batterymon.prom").Return(nil)

	svc := services.NewMetricsExportService("batterymon.prom", 30*time.Millisecond, writer, zerolog.Nop())
	require.NoError(t, svc.Start())
	assert.Error(t, svc.Start())

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, svc.Stop())

	// at least one tick plus the final write
	assert.GreaterOrEqual(t, len(writer.Calls), 2)
	assert.EqualError(t, svc.Stop(), "metrics export service is not running")
}

// TestMetricsExportService_StopReportsWriteError verifies the final write error is returned.
func TestMetricsExportService_StopReportsWriteError(t *testing.T) {
	writer := new(mocks.TextfileWriter)
	writer.On("WriteTextfile", "batterymon.prom").Return(errors.New("read-only file system"))

	svc := services.NewMetricsExportService("batterymon.prom", time.Hour, writer, zerolog.Nop())
	require.NoError(t, svc.Start())
	assert.ErrorContains(t, svc.Stop(), "read-only")
}
