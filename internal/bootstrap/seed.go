package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/machine"
)

// SeedDefaultMachine stores the default machine from its YAML file when the
// store does not have it yet. A machine already in the store is never
// overwritten, so edits made through the API survive restarts.
func SeedDefaultMachine(ctx context.Context, svc machine.Service, cfg *config.Config) error {
	m, source, err := config.LoadMachine(cfg.MachineConfigPath, cfg.DefaultMachineID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadMachine, err)
	}

	seeded, err := svc.Seed(ctx, m)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedMachine, err)
	}

	if seeded {
		logger.Info(LogMsgDefaultMachineSeed, "machine_id", m.ID, "source", source)
	} else {
		logger.Info(LogMsgDefaultMachineFound, "machine_id", m.ID)
	}
	return nil
}
