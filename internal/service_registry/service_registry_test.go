package service_registry_test

import (
	"errors"
	"testing"

	"github.com/benmeehan/batterymon/internal/metrics"
	"github.com/benmeehan/batterymon/internal/mocks"
	"github.com/benmeehan/batterymon/internal/service_registry"
	"github.com/benmeehan/batterymon/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Start() error { return m.Called().Error(0) }
func (m *mockService) Stop() error  { return m.Called().Error(0) }

func TestServiceRegistry_StartFailureStopsStarted(t *testing.T) {
	sr := service_registry.NewServiceRegistry(new(mocks.FileOperations), zerolog.Nop())

	first := new(mockService)
	first.On("Start").Return(nil)
	first.On("Stop").Return(nil)
	second := new(mockService)
	second.On("Start").Return(errors.New("boom"))

	sr.RegisterService("first", first)
	sr.RegisterService("second", second)
	sr.RegisterService("first", new(mockService))

	err := sr.StartServices()
	assert.ErrorContains(t, err, "failed to start second")
	first.AssertCalled(t, "Stop")
	second.AssertNotCalled(t, "Stop")
	assert.Equal(t, []string{"first", "second"}, sr.Names())
}

func TestServiceRegistry_StopInReverseOrder(t *testing.T) {
	sr := service_registry.NewServiceRegistry(new(mocks.FileOperations), zerolog.Nop())

	var order []string
	for _, name := range []string{"a", "b"} {
		name := name
		svc := new(mockService)
		svc.On("Start").Return(nil)
		svc.On("Stop").Run(func(mock.Arguments) { order = append(order, name) }).Return(nil)
		sr.RegisterService(name, svc)
	}

	assert.NoError(t, sr.StartServices())
	assert.NoError(t, sr.StopServices())
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestServiceRegistry_StopJoinsErrors(t *testing.T) {
	sr := service_registry.NewServiceRegistry(new(mocks.FileOperations), zerolog.Nop())

	svc := new(mockService)
	svc.On("Start").Return(nil)
	svc.On("Stop").Return(errors.New("stuck"))
	sr.RegisterService("csv_log", svc)

	assert.NoError(t, sr.StartServices())
	assert.ErrorContains(t, sr.StopServices(), "failed to stop csv_log: stuck")
}

func TestServiceRegistry_RegisterServices(t *testing.T) {
	config := utils.DefaultConfig()

	sr := service_registry.NewServiceRegistry(new(mocks.FileOperations), zerolog.Nop())
	sr.RegisterServices(config, new(mocks.BatteryReader), metrics.New())
	assert.Equal(t, []string{"csv_log"}, sr.Names())

	config.Metrics.Enabled = true
	sr = service_registry.NewServiceRegistry(new(mocks.FileOperations), zerolog.Nop())
	sr.RegisterServices(config, new(mocks.BatteryReader), metrics.New())
	assert.Equal(t, []string{"csv_log", "metrics_export"}, sr.Names())
}
