package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://www.example/api",
		"request_timeout": "12s",
		"login_timeout":   float64(time.Second),
		"log":             map[string]any{"format": "console"},
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "https://www.example/api", cfg.APIBaseURL)
		assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Second, cfg.LoginTimeout)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level, "absent keys keep their value")
		assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := &Config{
			APIBaseURL:     "http://defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		require.NoError(t, parseJson(cfg, nil))

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.ErrorContains(t, parseJson(cfg, []string{"-c", bad}), "parse config file")
	})

	t.Run("missing file → error", func(t *testing.T) {
		cfg := &Config{}
		require.ErrorContains(t, parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}), "read config file")
	})
}
