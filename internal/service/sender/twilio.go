package sender

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

var _ Sender = (*TwilioSender)(nil)

// MessageCreator Twilio 消息接口，*twilio.RestClient 的 Api 字段实现了它
//
//go:generate mockgen -source=./twilio.go -destination=./mocks/twilio.mock.go -package=sendermocks MessageCreator
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender 通过 Twilio 发送短信或 WhatsApp 消息
type TwilioSender struct {
	api      MessageCreator
	from     string
	whatsapp bool
}

// NewTwilioSMSSender 短信
func NewTwilioSMSSender(api MessageCreator, from string) *TwilioSender {
	return &TwilioSender{api: api, from: from}
}

// NewTwilioWhatsAppSender WhatsApp，发送方和接收方都会加上 whatsapp: 前缀
func NewTwilioWhatsAppSender(api MessageCreator, from string) *TwilioSender {
	return &TwilioSender{api: api, from: from, whatsapp: true}
}

func (s *TwilioSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if destination == "" {
		return fmt.Errorf("%w: 手机号码为空", errs.ErrInvalidParameter)
	}
	params := &openapi.CreateMessageParams{}
	params.SetTo(s.address(destination))
	params.SetFrom(s.address(s.from))
	params.SetBody(msg.Text)

	type result struct {
		msg *openapi.ApiV2010Message
		err error
	}
	// Twilio SDK 不支持 ctx
	ch := make(chan result, 1)
	go func() {
		m, err := s.api.CreateMessage(params)
		ch <- result{msg: m, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, res.err)
		}
		return s.checkStatus(res.msg)
	}
}

func (s *TwilioSender) checkStatus(m *openapi.ApiV2010Message) error {
	if m == nil || m.Status == nil {
		return nil
	}
	switch *m.Status {
	case "failed", "undelivered":
		reason := ""
		if m.ErrorMessage != nil {
			reason = *m.ErrorMessage
		}
		return fmt.Errorf("%w: Status = %s, Reason = %s", errs.ErrSendNotificationFailed, *m.Status, reason)
	default:
		return nil
	}
}

func (s *TwilioSender) address(number string) string {
	if !s.whatsapp || strings.HasPrefix(number, whatsappPrefix) {
		return number
	}
	return whatsappPrefix + number
}
