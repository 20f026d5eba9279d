package ioc

import (
	"gitee.com/flycash/stock-alert/internal/web"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

func InitWebConfig() web.Config {
	type Config struct {
		Secret       string `yaml:"secret"`
		CookieSecure bool   `yaml:"cookieSecure"`
	}
	var cfg Config
	err := econf.UnmarshalKey("webhook", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.Secret, "SALLA_WEBHOOK_SECRET")
	return web.Config{
		WebhookSecret: cfg.Secret,
		CookieSecure:  cfg.CookieSecure,
	}
}

func InitGinServer(handler *web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PublicRoutes(server.Engine)
	return server
}

func InitGovernor() *egovernor.Component {
	return egovernor.Load("server.governor").Build()
}
