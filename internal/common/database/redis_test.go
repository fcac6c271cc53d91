package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/common/config"
)

func TestNewRedis_PingAndClose(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)

	require.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Close())
}

func TestNewRedis_PoolSettings(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.RedisConfig
		pool     int
		minIdle  int
		dialWait time.Duration
	}{
		{name: "defaults", cfg: config.RedisConfig{Address: "localhost:6379"}, pool: 10, minIdle: 5, dialWait: 5 * time.Second},
		{name: "configured", cfg: config.RedisConfig{Address: "localhost:6379", PoolSize: 4, DialTimeout: 250}, pool: 4, minIdle: 2, dialWait: 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedis(tt.cfg)
			require.NoError(t, err)
			defer client.Close()

			opts := client.Options()
			assert.Equal(t, tt.pool, opts.PoolSize)
			assert.Equal(t, tt.minIdle, opts.MinIdleConns)
			assert.Equal(t, tt.dialWait, opts.DialTimeout)
		})
	}
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}

func TestPing_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	mr.Close()

	err = client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
