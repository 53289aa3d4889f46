package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "STORE_BACKEND", "AUTH_DELAY", "CORS_ORIGINS", "SEED_DATA", "TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, time.Second, cfg.AuthDelay)
	assert.True(t, cfg.SeedData)
	assert.Len(t, cfg.CORSOrigins, 2)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("AUTH_DELAY", "250ms")
	t.Setenv("JWT_EXPIRY", "2")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SEED_DATA", "no")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, 2, cfg.JWTExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.True(t, cfg.IsProduction())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("AUTH_DELAY", "soon")
	t.Setenv("JWT_EXPIRY", "many")
	t.Setenv("TIMEZONE", "Nowhere/Atlantis")

	cfg := Load()
	assert.Equal(t, time.Second, cfg.AuthDelay)
	assert.Equal(t, 24, cfg.JWTExpiry)
	assert.Equal(t, time.Local, cfg.Location())
}
