package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseURL)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{DatabaseURL: "postgres://x", RateLimitPerMinute: 10}, false},
		{"no database", Config{RateLimitPerMinute: 10}, true},
		{"zero rate", Config{DatabaseURL: "postgres://x"}, true},
		{"wildcard in production", Config{DatabaseURL: "postgres://x", RateLimitPerMinute: 10, Env: "production", CORSAllowedOrigins: "*"}, true},
		{"wildcard in development", Config{DatabaseURL: "postgres://x", RateLimitPerMinute: 10, CORSAllowedOrigins: "*"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	c := Config{CORSAllowedOrigins: " https://a.cl , https://b.cl,", Env: "production"}
	assert.Equal(t, []string{"https://a.cl", "https://b.cl"}, c.AllowedOrigins())

	c = Config{Env: "production"}
	assert.Empty(t, c.AllowedOrigins())
}
