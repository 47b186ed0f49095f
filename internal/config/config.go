package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // Empty disables API key auth outside prod

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// Machine store
	StoreDriver       string // "sqlite" or "postgres"
	SQLitePath        string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Machines
	MachineConfigPath string // Optional explicit YAML file for the default machine
	DefaultMachineID  string

	// Engine cache
	EngineCacheSize int
	EngineCacheTTL  time.Duration

	MaxRequestBytes  int64
	SimulationWorker int
	ShutdownTimeout  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreDriverSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "slotengine"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLife),
		MachineConfigPath: getEnv("MACHINE_CONFIG", ""),
		DefaultMachineID:  getEnv("DEFAULT_MACHINE_ID", DefaultMachineID),
		EngineCacheSize:   getEnvAsInt("ENGINE_CACHE_SIZE", DefaultEngineCacheSize),
		EngineCacheTTL:    getEnvAsDuration("ENGINE_CACHE_TTL", DefaultEngineCacheTTL),
		MaxRequestBytes:   int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),
		SimulationWorker:  getEnvAsInt("SIMULATION_WORKERS", DefaultSimulationWorker),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.StoreDriver {
	case StoreDriverSQLite, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %s or %s", cfg.StoreDriver, StoreDriverSQLite, StoreDriverPostgres)
	}

	if cfg.IsProduction() && cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security in production")
	}

	return cfg, nil
}

// getEnvAsList splits a comma-separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL URL. Credentials are escaped so
// passwords may contain URL metacharacters.
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
