package redisstore_test

import (
	"context"
	"testing"
	"time"

	redisstore "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestTryReserve(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	guard := redisstore.New(client, time.Hour)

	ctx := context.Background()
	ok, err := guard.TryReserve(ctx, "2024-01-02T20:00:00Z")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard.TryReserve(ctx, "2024-01-02T20:00:00Z")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = guard.TryReserve(ctx, "2024-01-02T20:15:00Z")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTryReserve_ExpiresAfterTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	guard := redisstore.New(client, time.Minute)

	ctx := context.Background()
	ok, err := guard.TryReserve(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = guard.TryReserve(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
}
