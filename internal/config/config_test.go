package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEVICE_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 1500*time.Millisecond, cfg.SimulatedLatency)
	assert.Equal(t, 365*24*time.Hour, cfg.Device.TTL)
	assert.Equal(t, "template_a9f4xqi", cfg.EmailJS.TemplateID)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DEVICE_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", " Redis ")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Zero(t, cfg.SimulatedLatency)
	assert.Equal(t, 9000, cfg.ServerPort)
}

func TestLoad_RequiresDeviceSecret(t *testing.T) {
	t.Setenv("DEVICE_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "DEVICE_SECRET")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{Device: Device{Secret: "x"}, Storage: Storage{Driver: "mongo"}}
	require.Error(t, cfg.Validate())
}

func TestCSV(t *testing.T) {
	t.Parallel()
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a", "b"}, CSV(" a ,, b "))
}
