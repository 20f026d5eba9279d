package idempotent

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// LocalIdempotencyService 单实例部署时使用的本地实现
type LocalIdempotencyService struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewLocalIdempotencyService(ttl time.Duration) *LocalIdempotencyService {
	return &LocalIdempotencyService{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *LocalIdempotencyService) Exists(_ context.Context, key string) (bool, error) {
	// Add 在 key 已存在且未过期时返回错误
	if err := s.cache.Add(key, struct{}{}, s.ttl); err != nil {
		return true, nil
	}
	return false, nil
}

func (s *LocalIdempotencyService) Release(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
