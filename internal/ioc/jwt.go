package ioc

import (
	"gitee.com/flycash/stock-alert/internal/pkg/jwt"
	"github.com/gotomicro/ego/core/econf"
)

func InitJwtAuth() *jwt.JwtAuth {
	type Config struct {
		Key string `yaml:"key"`
	}
	var cfg Config
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.Key, "SESSION_SECRET")
	if cfg.Key == "" {
		panic("session.key 未配置")
	}
	return jwt.NewJwtAuth(cfg.Key)
}
