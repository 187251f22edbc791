package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const (
	loginCacheSize = 1024 * 1024
	// short on purpose: a logout has to become visible quickly
	loginCacheExpireSeconds = 60
)

// LoginChecker validates session tokens against redis, with a small
// in-process cache in front so that the per-request auth check does not
// hit redis every time. Only positive results are cached.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *freecache.Cache
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		cache:       freecache.NewCache(loginCacheSize),
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	if _, err := c.cache.Get([]byte(token)); err == nil {
		return true, nil
	}

	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	createdAtUnixStr := cmd.Val()
	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	sessionDuration := time.Since(createdAt)
	if sessionDuration > c.ttl {
		return false, nil
	}

	// ignore cache set failures, the next check just goes to redis again
	_ = c.cache.Set([]byte(token), []byte{1}, loginCacheExpireSeconds)

	return true, nil
}
