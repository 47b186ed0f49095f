package bootstrap

// Log messages for startup
const (
	LogMsgOpeningStore        = "Opening machine store"
	LogMsgStoreReady          = "Machine store ready"
	LogMsgDefaultMachineSeed  = "Seeded default machine"
	LogMsgDefaultMachineFound = "Default machine already stored"
)

// Startup error messages
const (
	ErrMsgFailedOpenStore        = "failed to open machine store"
	ErrMsgFailedConnectDatabase  = "failed to connect to database"
	ErrMsgFailedMigrate          = "failed to migrate database"
	ErrMsgFailedLoadMachine      = "failed to load default machine"
	ErrMsgFailedSeedMachine      = "failed to seed default machine"
	ErrMsgUnsupportedStoreDriver = "unsupported store driver"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Machine store close failed"
)
