package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TIMEZONE", "America/Chicago")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "localhost:50053", cfg.ProgressSvcUrl)
	assert.False(t, cfg.AllowDateOverride)
}

func TestLoadConfigDateOverride(t *testing.T) {
	t.Setenv("ALLOW_DATE_OVERRIDE", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.AllowDateOverride)
}
