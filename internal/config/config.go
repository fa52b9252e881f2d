package config

import "os"

// Config holds runtime settings for the MemoryBook CLI.
type Config struct {
	// DataDir is where users.json, per-user entry documents and the
	// managed image directory live.
	DataDir string

	LogLevel  string
	LogFormat string

	// PasswordScheme selects how new account passwords are stored:
	// "plain" (default) or "argon2".
	PasswordScheme string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.PasswordScheme = "plain"
}

// LoadConfig constructs a Config from defaults, the optional config file,
// the environment (and .env) and the process command line, in that order.
func LoadConfig() *Config {
	return load(os.Args[1:], ".env")
}

func load(args []string, envFile string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg, envFile)
	parseFlags(cfg, args)
	return cfg
}
