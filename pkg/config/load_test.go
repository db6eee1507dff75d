package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "SERVER_PORT", "AUTH_REQUIRED", "AUTH_JWT_EXPIRY", "REDIS_URL",
		"CACHE_KYC_TTL", "RATE_LIMIT_MAX_REQUESTS", "DATABASE_MIGRATE", "EVENT_BUS_DRIVER")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Auth.Required)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.KYCTTL)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, "memory", cfg.EventBus.Driver)
	assert.Equal(t, 5*time.Second, cfg.EventBus.Block)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nAUTH_REQUIRED=true\nCACHE_KYC_TTL=30s\nREDIS_URL=redis://cache:6379/1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	unsetEnv(t, "SERVER_PORT", "AUTH_REQUIRED", "CACHE_KYC_TTL", "REDIS_URL")

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, 30*time.Second, cfg.Cache.KYCTTL)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://u:p@h/db?sslmode=disable"))
}

func TestFindEnvTest_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("X=1\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	found, err := FindEnvTest("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), found)
}
