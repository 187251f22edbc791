package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.redis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	cmd := s.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return []byte(cmd.Val()), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("value.size", len(value)))

	if err := s.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.redis.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
