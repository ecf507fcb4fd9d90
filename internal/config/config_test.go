package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "set")
	assert.Equal(t, "set", envString("TEST_ENV_STRING", "default"))
	assert.Equal(t, "default", envString("TEST_ENV_STRING_UNSET", "default"))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	assert.Equal(t, 42, envInt("TEST_ENV_INT", 7))
	assert.Equal(t, 7, envInt("TEST_ENV_INT_UNSET", 7))

	t.Setenv("TEST_ENV_INT_BAD", "not-a-number")
	assert.Equal(t, 7, envInt("TEST_ENV_INT_BAD", 7))
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("TEST_ENV_DURATION", "90s")
	assert.Equal(t, 90*time.Second, envDuration("TEST_ENV_DURATION", time.Hour))
	assert.Equal(t, time.Hour, envDuration("TEST_ENV_DURATION_UNSET", time.Hour))

	t.Setenv("TEST_ENV_DURATION_BAD", "soon")
	assert.Equal(t, time.Hour, envDuration("TEST_ENV_DURATION_BAD", time.Hour))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "auto", cfg.S3Region)
	assert.Equal(t, time.Hour, cfg.S3PresignExpiry)
}
