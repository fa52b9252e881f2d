package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDataDir        = "MEMORYBOOK_DATA_DIR"
	EnvLogLevel       = "MEMORYBOOK_LOG_LEVEL"
	EnvLogFormat      = "MEMORYBOOK_LOG_FORMAT"
	EnvPasswordScheme = "MEMORYBOOK_PASSWORD_SCHEME"
)

// parseEnv overlays cfg with MEMORYBOOK_* variables. Values from envFile
// (a dotenv file, skipped when absent) are used unless the real environment
// sets the same key.
func parseEnv(cfg *Config, envFile string) {
	vars := map[string]string{}
	if envFile != "" {
		if m, err := godotenv.Read(envFile); err == nil {
			vars = m
		}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vars[key]
	}

	setIf(&cfg.DataDir, lookup(EnvDataDir))
	setIf(&cfg.LogLevel, lookup(EnvLogLevel))
	setIf(&cfg.LogFormat, lookup(EnvLogFormat))
	setIf(&cfg.PasswordScheme, lookup(EnvPasswordScheme))
}
