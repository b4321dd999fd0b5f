package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported data backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port         string
	DataBackend  string
	SQLiteDBPath string
	LogLevel     string
}

func ProcessEnvironmentVariables() (*Config, error) {
	env := Config{
		Port:         getEnv("PORT", "9446"),
		DataBackend:  getEnv("DATA_BACKEND", BackendMemory),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/ledger.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty when using the sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be %q or %q",
			c.DataBackend, BackendMemory, BackendSQLite))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
