package logger

// Context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyMachineID = "machine_id"
)

// Log level string values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format string values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service configuration values
const (
	DefaultServiceName = "slotengine"
	CLIServiceName     = "slotctl"
	DefaultVersion     = "dev"
)

// Environment string values
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyMachineID   = "machine_id"
)
