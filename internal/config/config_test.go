package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, homeDir, content string) string {
	t.Helper()
	path := Path(homeDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func noEnv(string) string { return "" }

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home, Path(home), noEnv)

	require.NoError(t, err)
	assert.Equal(t, Default(home), cfg)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 15, cfg.HistorySize)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, filepath.Join(home, ".conbo", "store.json"), cfg.StorePath)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, `
base_url: http://localhost:3000/api-proxy
history_size: 10
timeout: 20s
store_path: /tmp/conbo-store.json
`)

	cfg, err := Load(home, path, noEnv)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api-proxy", cfg.BaseURL)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/conbo-store.json", cfg.StorePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "base_url: http://file\n")
	env := map[string]string{
		"CONBO_BASE_URL": "http://env",
		"CONBO_STORE":    "/env/store.json",
	}

	cfg, err := Load(home, path, func(k string) string { return env[k] })

	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.BaseURL)
	assert.Equal(t, "/env/store.json", cfg.StorePath)
}

func TestLoadRejectsHistorySizeOutOfRange(t *testing.T) {
	for _, size := range []string{"-1", "9", "16", "100"} {
		t.Run(size, func(t *testing.T) {
			home := t.TempDir()
			path := writeConfig(t, home, "history_size: "+size+"\n")

			_, err := Load(home, path, noEnv)

			assert.True(t, errors.Is(err, ErrInvalidHistorySize))
		})
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "timeout: soon\n")

	_, err := Load(home, path, noEnv)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "base_url: [unclosed\n")

	_, err := Load(home, path, noEnv)

	assert.Error(t, err)
}
