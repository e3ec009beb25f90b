package checkers

import (
	"context"

	"github.com/artem13815/jobboard/pkg/storage/redis"
)

// RedisChecker pings the token denylist.
type RedisChecker struct {
	denylist *redis.Denylist
}

func NewRedisChecker(d *redis.Denylist) *RedisChecker {
	return &RedisChecker{denylist: d}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return c.denylist.Ping(ctx)
}
