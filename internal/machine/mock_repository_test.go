package machine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/slotengine/internal/domain"
)

// MockRepository is a mock implementation of repository.Machine
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MockRepository) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Machine), args.Error(1)
}

func (m *MockRepository) SaveMachine(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockRepository) DeleteMachine(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
