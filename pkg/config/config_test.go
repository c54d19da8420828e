package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "avr-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "avr-test", cfg.FirebaseProject)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "avr-test")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DEFAULT_PAGE_SIZE", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 24, cfg.DefaultPageSize)
}

func TestClientOptions(t *testing.T) {
	assert.Empty(t, (&Config{}).ClientOptions())
	assert.Len(t, (&Config{ServiceAccountPath: "sa.json"}).ClientOptions(), 1)
	assert.Len(t, (&Config{ServiceAccountJSON: "{}", ServiceAccountPath: "sa.json"}).ClientOptions(), 1)
}
