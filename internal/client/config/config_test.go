package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"borelog"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "borelog.db", cfg.StorePath)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://api.example.com", "-t", "30", "-d", "local.db")
	cfg := LoadConfig()
	assert.Equal(t, "http://api.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "local.db", cfg.StorePath)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	body := `{"base_url": "http://json.example.com", "request_timeout": "45s", "store_path": "json.db"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	withArgs(t, "-c", path)
	cfg := LoadConfig()
	assert.Equal(t, "http://json.example.com", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.StorePath)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "http://json.example.com"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag.example.com")
	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example.com", cfg.BaseURL)
}
