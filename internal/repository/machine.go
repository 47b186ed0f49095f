package repository

import (
	"context"

	"github.com/osse101/slotengine/internal/domain"
)

// Machine defines the interface for machine configuration storage.
// Only settings are persisted; spin outcomes never are.
type Machine interface {
	// GetMachine returns domain.ErrMachineNotFound when id is unknown.
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	// SaveMachine inserts or replaces a machine, bumping its version. The
	// stored version and timestamp are written back into m.
	SaveMachine(ctx context.Context, m *domain.Machine) error
	DeleteMachine(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
