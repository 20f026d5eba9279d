package sender

import (
	"context"

	"gitee.com/flycash/stock-alert/internal/domain"
)

// Sender 单个渠道的发送器，只负责把渲染好的消息发到目标地址
// 超时由发送器自己控制，失败不重试
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=sendermocks Sender
type Sender interface {
	Send(ctx context.Context, destination string, msg domain.Message) error
}

// SenderFunc 函数适配器
type SenderFunc func(ctx context.Context, destination string, msg domain.Message) error

func (f SenderFunc) Send(ctx context.Context, destination string, msg domain.Message) error {
	return f(ctx, destination, msg)
}
