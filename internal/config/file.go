package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/memorybook/internal/flagx"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Empty fields leave the current value untouched.
type FileConfig struct {
	DataDir        string `json:"data_dir" yaml:"data_dir"`
	LogLevel       string `json:"log_level" yaml:"log_level"`
	LogFormat      string `json:"log_format" yaml:"log_format"`
	PasswordScheme string `json:"password_scheme" yaml:"password_scheme"`
}

// parseFile overlays cfg with values from the file named by -c/-config.
// It panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	setIf(&cfg.DataDir, fc.DataDir)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.PasswordScheme, fc.PasswordScheme)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
