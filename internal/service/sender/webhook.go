package sender

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLen = 256

var _ Sender = (*WebhookSender)(nil)

// WebhookSender 把 JSON 负载 POST 到商家配置的地址，非 2xx 视为失败
type WebhookSender struct {
	client *resty.Client
}

// NewWebhookSender 创建 Webhook 发送器
func NewWebhookSender(client *resty.Client, timeout time.Duration) *WebhookSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSender{
		client: client.SetTimeout(timeout),
	}
}

func (s *WebhookSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if destination == "" {
		return fmt.Errorf("%w: Webhook 地址为空", errs.ErrInvalidParameter)
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg.Payload).
		Post(destination)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: StatusCode = %d, Body = %s",
			errs.ErrSendNotificationFailed, resp.StatusCode(), truncate(resp.String(), maxErrorBodyLen))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
