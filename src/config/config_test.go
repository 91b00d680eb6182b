package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"REDIS_URL", "MYSQL_DSN", "PORT", "EXTENSION_SECONDS", "THRESHOLD_PROXIMITY", "TIME_PROXIMITY", "MAX_EXTENSION"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "redis://127.0.0.1:6379/0", cfg.RedisURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(30), cfg.ExtensionSeconds)
	assert.Equal(t, 0.9, cfg.ThresholdProximity)
	assert.Equal(t, 0.9, cfg.TimeProximity)
	assert.Equal(t, int64(0), cfg.MaxExtension)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://10.0.0.5:6379/2")
	t.Setenv("PORT", "9090")
	t.Setenv("EXTENSION_SECONDS", "120")
	t.Setenv("THRESHOLD_PROXIMITY", "0.75")
	t.Setenv("MAX_EXTENSION", "600")

	cfg := Load()
	assert.Equal(t, "redis://10.0.0.5:6379/2", cfg.RedisURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(120), cfg.ExtensionSeconds)
	assert.Equal(t, 0.75, cfg.ThresholdProximity)
	assert.Equal(t, int64(600), cfg.MaxExtension)
}
