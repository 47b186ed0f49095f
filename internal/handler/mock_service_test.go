package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/machine"
	"github.com/osse101/slotengine/internal/slots"
)

// MockMachineService is a mock implementation of machine.Service
type MockMachineService struct {
	mock.Mock
}

func (m *MockMachineService) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MockMachineService) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Machine), args.Error(1)
}

func (m *MockMachineService) SaveMachine(ctx context.Context, machine domain.Machine) (*domain.Machine, error) {
	args := m.Called(ctx, machine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MockMachineService) DeleteMachine(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMachineService) Seed(ctx context.Context, machine domain.Machine) (bool, error) {
	args := m.Called(ctx, machine)
	return args.Bool(0), args.Error(1)
}

func (m *MockMachineService) Spin(ctx context.Context, id string, bet int64) (*domain.SpinResult, error) {
	args := m.Called(ctx, id, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockMachineService) Evaluate(ctx context.Context, id string, grid domain.Grid, bet int64) (*domain.SpinResult, error) {
	args := m.Called(ctx, id, grid, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockMachineService) Simulate(ctx context.Context, id string, req slots.SimulationRequest) (*slots.SimulationReport, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slots.SimulationReport), args.Error(1)
}

func (m *MockMachineService) GetCacheStats() machine.CacheStats {
	return m.Called().Get(0).(machine.CacheStats)
}

func (m *MockMachineService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
