package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Cache.SuggestionTTL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 6, cfg.Suggestions.DefaultLimit)
	assert.Equal(t, 20, cfg.Suggestions.CommunityPageSize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("CACHE_SUGGESTION_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SuggestionTTL)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: "5432",
		User: "postgres", Password: "secret",
		Name: "nutrivo", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=nutrivo sslmode=disable",
		c.DSN())
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: "8080"},
		Database:    DatabaseConfig{Host: "localhost", Name: "nutrivo"},
		Cache:       CacheConfig{Enabled: true, SuggestionTTL: 0},
		Suggestions: SuggestionConfig{DefaultLimit: 6},
	}
	assert.Error(t, Validate(cfg))

	cfg.Cache.SuggestionTTL = time.Minute
	assert.NoError(t, Validate(cfg))

	cfg.Suggestions.DefaultLimit = 0
	assert.Error(t, Validate(cfg))
}
