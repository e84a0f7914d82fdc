package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(lookupFrom(map[string]string{
		"DATABASE_URL":   "postgres://localhost/goacesso",
		"JWT_SECRET_KEY": "segredo",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 300*time.Second, cfg.ScheduleCacheTTL)
	assert.Equal(t, 4, cfg.ScheduleMaxParallelWrites)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(lookupFrom(map[string]string{
		"DATABASE_URL":                 "postgres://localhost/goacesso",
		"JWT_SECRET_KEY":               "segredo",
		"DB_TIMEOUT_SEC":               "2",
		"RATE_LIMIT_MAX_REQUESTS":      "abc",
		"SCHEDULE_MAX_PARALLEL_WRITES": "0",
		"TRUST_PROXY_HEADERS":          "true",
		"CORS_ALLOWED_ORIGINS":         "http://localhost:3000, https://painel.exemplo.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, 1, cfg.ScheduleMaxParallelWrites)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, []string{"http://localhost:3000", "https://painel.exemplo.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(lookupFrom(map[string]string{}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}
