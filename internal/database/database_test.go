package database

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/party-events/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigAppliesSettings(t *testing.T) {
	cfg := config.Default().Database
	cfg.MaxConns = 7
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Minute

	poolCfg, err := PoolConfig(cfg, zerolog.New(io.Discard).Level(zerolog.InfoLevel))
	require.NoError(t, err)

	assert.Equal(t, int32(7), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns)
	assert.Equal(t, time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "parties", poolCfg.ConnConfig.Database)
	assert.Nil(t, poolCfg.ConnConfig.Tracer)
}

func TestPoolConfigTracesAtDebug(t *testing.T) {
	poolCfg, err := PoolConfig(config.Default().Database, zerolog.New(io.Discard).Level(zerolog.DebugLevel))
	require.NoError(t, err)
	assert.NotNil(t, poolCfg.ConnConfig.Tracer)
}

func TestNewPoolGivesUpAfterAttempts(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 2 * time.Second })

	cfg := config.Default().Database
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.ConnectAttempts = 2

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, cfg, zerolog.New(io.Discard))
	assert.Nil(t, pool)
	assert.ErrorContains(t, err, "connect to postgres")
}
