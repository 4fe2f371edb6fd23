package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowd-escrow/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.HTTP.Faucet)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.Normalized())
	assert.Equal(t, "crowd-escrow", cfg.Escrow.ProgramName)
	assert.False(t, cfg.Escrow.LegacyFinalize)
	assert.True(t, cfg.Auth.VerifySignatures)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/escrow.db")
	t.Setenv("ESCROW_LEGACY_FINALIZE", "true")
	t.Setenv("AUTH_MAX_CLOCK_SKEW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.DriverSQLite, cfg.Store.Normalized())
	assert.Equal(t, "/tmp/escrow.db", cfg.Sqlite.Path)
	assert.True(t, cfg.Escrow.LegacyFinalize)
	assert.Equal(t, 30*time.Second, cfg.Auth.MaxClockSkew)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_PORT=9090\nHTTP_FAUCET=true\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() {
		_ = os.Unsetenv("HTTP_PORT")
		_ = os.Unsetenv("HTTP_FAUCET")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.Faucet)
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
	assert.Equal(t, "DEBUG", configs.Logger{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "INFO", configs.Logger{Level: "loud"}.SlogLevel().String())
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.NewHandler(&buf))

	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
