package tracing

import (
	"context"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Sender 为发送器添加链路追踪的装饰器
type Sender struct {
	sender  sender.Sender
	channel domain.Channel
	tracer  trace.Tracer
}

// NewSender 创建一个新的带有链路追踪的发送器
func NewSender(ch domain.Channel, s sender.Sender) *Sender {
	return &Sender{
		sender:  s,
		channel: ch,
		tracer:  otel.Tracer("stock-alert/sender"),
	}
}

func (s *Sender) Send(ctx context.Context, destination string, msg domain.Message) error {
	// 目标地址属于商家隐私，不记录
	ctx, span := s.tracer.Start(ctx, "Sender.Send",
		trace.WithAttributes(
			attribute.String("alert.channel", s.channel.String()),
		))
	defer span.End()

	err := s.sender.Send(ctx, destination, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
