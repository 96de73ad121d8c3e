package flashdeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "flashdeck.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.NumCards)
	assert.False(t, cfg.Verbose)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("NUM_CARDS", "25")
	t.Setenv("VERBOSE", "true")
	t.Setenv("CORS_ORIGINS", "https://cards.example.com, https://staging.example.com")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 25, cfg.NumCards)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"https://cards.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
}

func TestEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("NUM_CARDS", "not-a-number")
	cfg := FromEnv()
	assert.Equal(t, 10, cfg.NumCards)
}
