package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "boltcard_gateway", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, "staging", cfg.LNBits.Environment)
	assert.Equal(t, 10*time.Second, cfg.LNBits.Timeout)

	assert.Equal(t, 15*time.Minute, cfg.Issuer.RegistrationTTL)
	assert.Equal(t, 3*time.Minute, cfg.Issuer.WithdrawTTL)
	assert.Equal(t, time.Hour, cfg.Issuer.TopupTTL)

	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "boltcard-gateway", cfg.JWT.Issuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
  base_url: "https://cards.example.com"
database:
  host: "db.example.com"
  port: 5433
  user: "appuser"
  password: "secret123"
  dbname: "cards"
  sslmode: "require"
redis:
  host: "redis.example.com"
  port: 6380
  db: 2
lnbits:
  environment: "production"
  url: "https://ln.example.com"
  api_key: "adminkey123"
  timeout: "5s"
issuer:
  registration_ttl: "10m"
  withdraw_ttl: "2m"
  topup_ttl: "30m"
jwt:
  secret: "my-jwt-secret"
  expiry: "12h"
aes:
  key: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://cards.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "production", cfg.LNBits.Environment)
	assert.Equal(t, "adminkey123", cfg.LNBits.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LNBits.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Issuer.RegistrationTTL)
	assert.Equal(t, 30*time.Minute, cfg.Issuer.TopupTTL)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BCG_DATABASE_HOST", "env-db-host")
	t.Setenv("BCG_LNBITS_ENVIRONMENT", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-db-host", cfg.Database.Host)
	assert.Equal(t, "production", cfg.LNBits.Environment)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "cards", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/cards?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.Addr())
}
