package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisIdempotencyService struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisIdempotencyService(client redis.Cmdable, prefix string, ttl time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.prefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, err
	}
	// 设置成功说明之前不存在
	return !ok, nil
}

func (s *RedisIdempotencyService) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
