package idempotent

import "context"

// IdempotencyService 判断 key 在有效期内是否已经出现过。
// 第一次调用返回 false 并记录 key，之后在有效期内都返回 true
//
//go:generate mockgen -source=./type.go -destination=./mocks/idempotent.mock.go -package=idempotentmocks IdempotencyService
type IdempotencyService interface {
	Exists(ctx context.Context, key string) (bool, error)
	// Release 删除 key，下一次 Exists 重新返回 false
	Release(ctx context.Context, key string) error
}
