// Package config loads runtime configuration for the MemoryBook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. ".yaml"/".yml" files
//     are read as YAML, everything else as JSON.
//  3. Environment variables, optionally seeded from a ".env" file in the
//     working directory (real environment wins over the file).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory (accounts, entries, images)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//
// Environment
//
//	MEMORYBOOK_DATA_DIR, MEMORYBOOK_LOG_LEVEL, MEMORYBOOK_LOG_FORMAT,
//	MEMORYBOOK_PASSWORD_SCHEME
//
// # File schema
//
//	{
//	  "data_dir": "/home/me/memorybook",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "password_scheme": "plain"
//	}
//
// Malformed files or flags panic, the same way at every stage; main is
// expected to let that terminate the program.
package config
