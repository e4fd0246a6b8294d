package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 120*time.Minute, cfg.SessionTTL)
	assert.Equal(t, int64(42), cfg.CatalogSeed)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delays.AssistantReply)
	assert.Equal(t, 3000*time.Millisecond, cfg.Delays.AgentGreeting)
	assert.Contains(t, cfg.Database.DSN, "@tcp(localhost:3306)/telehealth")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("DOCTOR_REPLY_MAX_MS", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 50*time.Millisecond, cfg.Delays.DoctorReplyMax)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad driver", "STORAGE_DRIVER", "postgres"},
		{"bad ttl", "SESSION_TTL_MINUTES", "soon"},
		{"bad seed", "CATALOG_SEED", "x"},
		{"bad delay", "ASSISTANT_REPLY_MS", "1.5s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestDoctorReplyDelay(t *testing.T) {
	d := DelayConfig{
		DoctorReplyBase: time.Second,
		DoctorReplyMax:  2 * time.Second,
		DoctorPerChar:   10 * time.Millisecond,
	}

	assert.Equal(t, time.Second, d.DoctorReplyDelay(""))
	assert.Equal(t, 1100*time.Millisecond, d.DoctorReplyDelay("0123456789"))
	assert.Equal(t, 2*time.Second, d.DoctorReplyDelay(string(make([]byte, 500))))
}
