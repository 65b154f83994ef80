package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9010/preview", cfg.Server.PreviewBaseURL)
	assert.Equal(t, "storefront.app", cfg.Server.BaseDomain)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "storefront.yaml", `
server:
  port: "8080"
  origin: https://preview.example.com
  read_timeout: 3s
logging:
  level: debug
store:
  driver: postgres
  dsn: postgres://localhost/storefront?sslmode=disable
cache:
  redis_address: localhost:6379
  ttl: 1m
render:
  minify: true
  brand: Bazaar
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://preview.example.com/preview", cfg.Server.PreviewBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddress)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Render.Minify)
	assert.Equal(t, "Bazaar", cfg.Render.Brand)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_URL", "postgres://db/storefront")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://db/storefront", cfg.Store.DSN)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "server: [",
		"bad port":        "server:\n  port: http\n",
		"unknown driver":  "store:\n  driver: mongo\n",
		"postgres no dsn": "store:\n  driver: postgres\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.yaml", body))
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "STOREFRONT_TEST_VALUE=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_TEST_VALUE") })

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env"), path))
	assert.Equal(t, "from-dotenv", os.Getenv("STOREFRONT_TEST_VALUE"))
}
