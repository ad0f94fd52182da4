package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.LoginRateLimit)
	assert.False(t, cfg.DatabaseEnabled())
	assert.False(t, cfg.MediaEnabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `ENV=production
API_BASE_URL=https://api.example.com/v1
API_TIMEOUT=30s
SESSION_SECRET=from-file
CACHE_TTL=2m
DB_HOST=db
DB_NAME=admin
S3_BUCKET=media
ALLOWED_ORIGINS=https://a.example.com, https://b.example.com ,
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "from-env", cfg.SessionSecret)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.DatabaseEnabled())
	assert.True(t, cfg.MediaEnabled())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Origins())
}

func TestOrigins_Empty(t *testing.T) {
	assert.Empty(t, Config{AllowedOrigins: " , "}.Origins())
}
