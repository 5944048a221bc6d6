package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "dynamodb", cfg.Store.Driver)
	require.Equal(t, "local", cfg.Artifacts.Backend)
	require.Equal(t, 30*24*time.Hour, cfg.Quote.Validity())
	require.False(t, cfg.SMTP.Enabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: "9090"
  allowed_origins: ["https://admin.example.com"]
store:
  driver: mongo
  mongo_database: quotes_test
smtp:
  host: smtp.example.com
  from: quotes@example.com
artifacts:
  retention: 720h
quote:
  validity_days: 15
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("APP_CONFIG_PATH", path)
	t.Setenv("PORT", "7070")
	t.Setenv("AI_MOCK", "yes")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Server.Port, "env wins over file")
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	require.Equal(t, "mongo", cfg.Store.Driver)
	require.Equal(t, "quotes_test", cfg.Store.MongoDatabase)
	require.Equal(t, "quotes", cfg.Store.QuotesTable, "defaults survive partial files")
	require.Equal(t, 720*time.Hour, cfg.Artifacts.Retention)
	require.Equal(t, 15, cfg.Quote.ValidityDays)
	require.True(t, cfg.AI.Mock)
	require.True(t, cfg.SMTP.Enabled())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("APP_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("APP_CONFIG_PATH", "")
		t.Setenv("SMTP_PORT", "abc")
		_, err := Load()
		require.ErrorContains(t, err, "SMTP_PORT")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_CONFIG_PATH", "")
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := Load()
		require.ErrorContains(t, err, "store driver")
	})

	t.Run("bucket required", func(t *testing.T) {
		t.Setenv("APP_CONFIG_PATH", "")
		t.Setenv("ARTIFACTS_BACKEND", "s3")
		_, err := Load()
		require.ErrorContains(t, err, "bucket")
	})
}
