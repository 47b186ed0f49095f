package machine

import (
	"errors"
	"time"
)

// CacheSchemaVersion is the current version of the cached engine entry.
// Increment this when the cached structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgSpinEvaluated     = "Spin evaluated"
	LogMsgSpinRejected      = "Spin rejected"
	LogMsgBigWin            = "Big win"
	LogMsgMachineSaved      = "Machine saved"
	LogMsgMachineDeleted    = "Machine deleted"
	LogMsgMachineSeeded     = "Seeded machine"
	LogMsgEngineBuilt       = "Built engine for machine"
	LogMsgSimulationStarted = "Simulation started"
	LogMsgSimulationDone    = "Simulation finished"
)

// Error message prefixes
const (
	ErrMsgFailedToLoadMachine   = "failed to load machine"
	ErrMsgFailedToListMachines  = "failed to list machines"
	ErrMsgFailedToSaveMachine   = "failed to save machine"
	ErrMsgFailedToDeleteMachine = "failed to delete machine"
	ErrMsgFailedToBuildEngine   = "failed to build engine"
)

// ErrEngineBuild marks a stored machine whose configuration no longer builds an
// engine. It wraps domain.ErrInvalidConfig but is a server-side fault.
var ErrEngineBuild = errors.New(ErrMsgFailedToBuildEngine)
