package tracing

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// 修改全局 TracerProvider，不能并行
func TestSender_Send(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ok := NewSender(domain.ChannelSMS, sender.SenderFunc(func(_ context.Context, _ string, _ domain.Message) error {
		return nil
	}))
	bad := NewSender(domain.ChannelWebhook, sender.SenderFunc(func(_ context.Context, _ string, _ domain.Message) error {
		return errors.New("timeout")
	}))

	require.NoError(t, ok.Send(context.Background(), "+966500000000", domain.Message{}))
	require.Error(t, bad.Send(context.Background(), "https://hooks.example.com", domain.Message{}))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "Sender.Send", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("alert.channel", "sms"))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Contains(t, spans[1].Attributes(), attribute.String("alert.channel", "webhook"))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "timeout", spans[1].Status().Description)
}
