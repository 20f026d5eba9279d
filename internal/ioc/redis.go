package ioc

import (
	"time"

	"gitee.com/flycash/stock-alert/internal/pkg/idempotent"
	redismetrics "gitee.com/flycash/stock-alert/internal/pkg/redis/metrics"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// InitRedisClient 没有配置地址时返回 nil，冷却去重退化为本地实现
func InitRedisClient() *redis.Client {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.Addr, "REDIS_ADDR")
	if cfg.Addr == "" {
		return nil
	}
	cmd := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cmd.AddHook(redismetrics.NewHook(prometheus.DefaultRegisterer))
	return cmd
}

// InitIdempotencyService cooldown 为 0 时关闭冷却去重
func InitIdempotencyService(client *redis.Client) idempotent.IdempotencyService {
	type Config struct {
		Cooldown time.Duration `yaml:"cooldown"`
	}
	var cfg Config
	err := econf.UnmarshalKey("alert", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Cooldown <= 0 {
		return nil
	}
	if client == nil {
		return idempotent.NewLocalIdempotencyService(cfg.Cooldown)
	}
	return idempotent.NewRedisIdempotencyService(client, "stock-alert:cooldown:", cfg.Cooldown)
}
