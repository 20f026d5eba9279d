package ioc

import (
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/notification"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/gotomicro/ego/core/econf"
)

func InitDispatcher(senders map[domain.Channel]sender.Sender) notification.Dispatcher {
	type Config struct {
		ChannelTimeout time.Duration `yaml:"channelTimeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("alert", &cfg)
	if err != nil {
		panic(err)
	}
	var opts []notification.Option
	if cfg.ChannelTimeout > 0 {
		opts = append(opts, notification.WithChannelTimeout(cfg.ChannelTimeout))
	}
	return notification.NewDispatcher(senders, opts...)
}
