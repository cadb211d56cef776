package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	assert.Contains(t, cfg.DBUrl, "postgres://")
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "changeme", cfg.JWTSecret)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://x:y@db:5432/z")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "s3gr3d0")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()

	assert.Equal(t, "postgres://x:y@db:5432/z", cfg.DBUrl)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "s3gr3d0", cfg.JWTSecret)
	assert.Equal(t, ":9090", cfg.Addr())
}
