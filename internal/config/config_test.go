package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg := MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "propulse.sqlite", cfg.StoragePath)
	assert.Equal(t, "Europe/Madrid", cfg.DisplayTimezone)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, "propulse_session", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORAGE_PATH", "/var/lib/propulse/data.sqlite")
	t.Setenv("SESSION_TTL", "1h")

	cfg := MustLoad()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/var/lib/propulse/data.sqlite", cfg.StoragePath)
	assert.Equal(t, time.Hour, cfg.TTL)
}

func TestMustLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`env: dev
storage_path: ./dev.sqlite
display_timezone: Europe/Madrid
http_server:
  addresshttp: ":9090"
  timeouthttp: 10s
  idle_timeout: 90s
session:
  cookie_name: pp_sid
  ttl: 12h
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "./dev.sqlite", cfg.StoragePath)
	assert.Equal(t, ":9090", cfg.AddressHTTP)
	assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, "pp_sid", cfg.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.TTL)
}

func TestLocation(t *testing.T) {
	cfg := &Config{DisplayTimezone: "Europe/Madrid"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", loc.String())

	cfg.DisplayTimezone = "Mars/Olympus"
	_, err = cfg.Location()
	assert.Error(t, err)
}
