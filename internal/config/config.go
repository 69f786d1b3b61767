package config

import "os"

// Config carries the process configuration, read from environment variables
// (optionally via a .env file loaded by the entrypoints).
type Config struct {
	Port        string
	Environment string

	// DatabaseURL selects the persistence backend. When empty the server
	// runs on the in-memory repository set and state does not survive a
	// restart.
	DatabaseURL string

	// JWKSURL is the endpoint the JWT verifier fetches signing keys from.
	JWKSURL string

	// OperatorAccount is the privileged operator identity. Every
	// operator-only check compares the verified caller against this value.
	OperatorAccount string

	CORSOrigins string

	// LogDir enables file logging when set; empty means stdout only.
	LogDir string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		JWKSURL:         getEnv("JWKS_URL", ""),
		OperatorAccount: getEnv("OPERATOR_ACCOUNT", "lorebook"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		LogDir:          getEnv("LOG_DIR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
