package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
)

var emailTmpl = template.Must(template.New("low_stock").Parse(`<h2>Low Stock Warning</h2>
<p>The product <strong>{{.ProductName}}</strong> is running low.</p>
<ul>
    <li>Current Quantity: <strong>{{.CurrentQuantity}}</strong></li>
    <li>Threshold: <strong>{{.Threshold}}</strong></li>
</ul>
<p>Please restock soon!</p>
`))

// BuildMessage 为单个渠道渲染消息，每个渠道只拿到自己需要的内容
func BuildMessage(ch domain.Channel, telegramChatID string, evt domain.LowStockEvent, now time.Time) (domain.Message, error) {
	switch ch {
	case domain.ChannelEmail:
		var buf bytes.Buffer
		if err := emailTmpl.Execute(&buf, evt); err != nil {
			return domain.Message{}, fmt.Errorf("渲染邮件失败: %w", err)
		}
		return domain.Message{
			Subject: "⚠️ Low Stock Alert: " + evt.ProductName,
			HTML:    buf.String(),
		}, nil
	case domain.ChannelSMS, domain.ChannelWhatsApp:
		return domain.Message{
			Text: fmt.Sprintf("⚠️ *Low Stock Alert* ⚠️\nProduct: %s\nStock: %d (Threshold: %d)\nRestock Recommended!",
				evt.ProductName, evt.CurrentQuantity, evt.Threshold),
			Params: []domain.TemplateParam{
				{Name: "product", Value: evt.ProductName},
				{Name: "quantity", Value: strconv.Itoa(evt.CurrentQuantity)},
				{Name: "threshold", Value: strconv.Itoa(evt.Threshold)},
			},
		}, nil
	case domain.ChannelWebhook:
		return domain.Message{
			Payload: domain.WebhookPayload{
				Event:           domain.WebhookEventLowStock,
				AlertID:         evt.AlertID,
				MerchantID:      evt.MerchantID,
				ProductID:       evt.ProductID,
				ProductName:     evt.ProductName,
				CurrentQuantity: evt.CurrentQuantity,
				Threshold:       evt.Threshold,
				TelegramChatID:  telegramChatID,
				Timestamp:       now.UTC().Format(time.RFC3339),
				RawData:         evt.RawData,
			},
		}, nil
	default:
		return domain.Message{}, fmt.Errorf("%w: Channel = %s", errs.ErrChannelUnavailable, ch)
	}
}
