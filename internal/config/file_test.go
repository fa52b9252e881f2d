package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads JSON", func(t *testing.T) {
		path := writeTempJSON(t, dir, "cfg.json", map[string]any{
			"data_dir":  "/srv/memories",
			"log_level": "debug",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, "/srv/memories", cfg.DataDir)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat, "absent keys keep their value")
	})

	t.Run("loads YAML", func(t *testing.T) {
		path := filepath.Join(dir, "cfg.yml")
		require.NoError(t, os.WriteFile(path, []byte("log_format: zap\n"), 0o600))

		cfg := &Config{}
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, "zap", cfg.LogFormat)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{DataDir: "keep"}
		parseFile(cfg, []string{"-d", "other"})
		assert.Equal(t, "keep", cfg.DataDir)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
