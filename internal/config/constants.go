package config

import "time"

// Machine configuration file locations
const (
	ConfigPathMachinesDir = "configs/machines/"
	MachineFileExt        = ".yaml"
)

// Store drivers
const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "slotengine"
	DefaultVersion          = "dev"
	DefaultMachineID        = "classic"
	DefaultSQLitePath       = "data/slotengine.db"
	DefaultDBMaxConns       = 20
	DefaultDBMaxConnIdle    = 5 * time.Minute
	DefaultDBMaxConnLife    = 30 * time.Minute
	DefaultEngineCacheSize  = 64
	DefaultEngineCacheTTL   = 10 * time.Minute
	DefaultShutdownTimeout  = 15 * time.Second
	DefaultMaxRequestBytes  = 1 << 20
	DefaultSimulationWorker = 4
)
