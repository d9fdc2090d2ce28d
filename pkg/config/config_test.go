package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("SERVER_PORT", "9000")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "redis.internal")
	os.Setenv("STORAGE_BACKEND", "s3")
	os.Setenv("MEDIA_DIR", "/var/lib/snapfeed/media")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "redis.internal", cfg.RedisHost)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, "/var/lib/snapfeed/media", cfg.MediaDir)

	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("STORAGE_BACKEND")
	os.Unsetenv("MEDIA_DIR")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("STORAGE_BACKEND")
	os.Unsetenv("MEDIA_DIR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, "media", cfg.MediaDir)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}
