package sender

import (
	"context"
	"fmt"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/service/sender/sms/client"
	"github.com/ecodeclub/ekit/slice"
)

var _ Sender = (*SMSSender)(nil)

// SMSSender 通过区域短信供应商发送，使用模板参数而不是正文
type SMSSender struct {
	client     client.Client
	signName   string
	templateID string
}

// NewSMSSender 创建区域短信发送器
func NewSMSSender(c client.Client, signName, templateID string) *SMSSender {
	return &SMSSender{
		client:     c,
		signName:   signName,
		templateID: templateID,
	}
}

func (s *SMSSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	if destination == "" {
		return fmt.Errorf("%w: 手机号码为空", errs.ErrInvalidParameter)
	}
	type result struct {
		resp client.SendResp
		err  error
	}
	// 供应商 SDK 不支持 ctx
	ch := make(chan result, 1)
	go func() {
		resp, err := s.client.Send(client.SendReq{
			PhoneNumbers: []string{destination},
			SignName:     s.signName,
			TemplateID:   s.templateID,
			TemplateParam: slice.Map(msg.Params, func(_ int, src domain.TemplateParam) client.Param {
				return client.Param{Name: src.Name, Value: src.Value}
			}),
		})
		ch <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, res.err)
		}
		// 没有任何号码的回执，无法确认已送达
		if len(res.resp.PhoneNumbers) == 0 {
			return fmt.Errorf("%w: RequestID = %s, 缺少号码回执",
				errs.ErrSendNotificationFailed, res.resp.RequestID)
		}
		for phone, status := range res.resp.PhoneNumbers {
			if status.Code != client.OK {
				return fmt.Errorf("%w: Phone = %s, Code = %s, Message = %s",
					errs.ErrSendNotificationFailed, phone, status.Code, status.Message)
			}
		}
		return nil
	}
}
