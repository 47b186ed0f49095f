package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables every deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"STORE_DRIVER",
}

// PostgresEnvVars are additionally required when STORE_DRIVER=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// Placeholder values shipped in .env.example
const (
	examplePassword = "change_this_secure_password"
	exampleAPIKey   = "generate_with_openssl_rand_hex_32"
)

var intEnvVars = []string{"DB_MAX_CONNS", "ENGINE_CACHE_SIZE", "MAX_REQUEST_BYTES", "SIMULATION_WORKERS"}

var durationEnvVars = []string{"DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "ENGINE_CACHE_TTL", "SHUTDOWN_TIMEOUT"}

// ValidateEnv checks the schema version and that every variable the chosen
// store driver needs is present.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("STORE_DRIVER"), StoreDriverPostgres) {
		required = append(append([]string(nil), RequiredEnvVars...), PostgresEnvVars...)
	}
	if missing := unsetVars(required); len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports settings that work but
// are probably not what the operator meant.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == examplePassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	switch os.Getenv("API_KEY") {
	case exampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case "":
		warnings = append(warnings, "API_KEY is empty - API key authentication is disabled")
	}

	if path := os.Getenv("MACHINE_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("MACHINE_CONFIG %q is not readable - the default machine will not be seeded from it", path))
		}
	}
	for _, key := range intEnvVars {
		if v := os.Getenv(key); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not an integer - using the default", key, v))
			}
		}
	}
	for _, key := range durationEnvVars {
		if v := os.Getenv(key); v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s=%q is not a duration - using the default", key, v))
			}
		}
	}
	return warnings, nil
}

func unsetVars(keys []string) []string {
	var missing []string
	for _, k := range keys {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
