package mocks

import (
	"context"

	"github.com/benmeehan/batterymon/internal/models"
	"github.com/stretchr/testify/mock"
)

// BatteryReader is a mock implementation of the sensors.BatteryReader interface
type BatteryReader struct {
	mock.Mock
}

func (m *BatteryReader) ReadBattery(ctx context.Context) (*models.BatteryStatus, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*models.BatteryStatus)
	return status, args.Error(1)
}

// Source is a mock implementation of the sensors.Source interface
type Source struct {
	BatteryReader
}

func (m *Source) Snapshot(ctx context.Context) models.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(models.Snapshot)
}
