package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bvl-sync:"

// RunGuard reserves a reconciliation slot via SET NX so that overlapping
// scheduled runs across replicas can skip instead of racing. Best effort
// only: the HTTP trigger never goes through it.
type RunGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *RunGuard {
	return &RunGuard{Client: client, TTL: ttl}
}

func (g *RunGuard) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := g.Client.SetNX(ctx, keyPrefix+key, "1", g.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
