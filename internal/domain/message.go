package domain

import "encoding/json"

// TemplateParam 短信模板参数，部分供应商按顺序取值
type TemplateParam struct {
	Name  string
	Value string
}

// Message 渲染好的通知内容，各渠道只会拿到自己需要的字段
type Message struct {
	Subject string // 邮件
	HTML    string // 邮件
	Text    string // 短信 / WhatsApp
	Params  []TemplateParam
	Payload any // Webhook 请求体
}

// WebhookEventLowStock 推送给自定义 Webhook 的事件类型
const WebhookEventLowStock = "low_stock_alert"

// WebhookPayload 自定义 Webhook 的请求体
type WebhookPayload struct {
	Event           string          `json:"event"`
	AlertID         uint64          `json:"alert_id,omitempty"`
	MerchantID      int64           `json:"merchant_id"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	CurrentQuantity int             `json:"current_quantity"`
	Threshold       int             `json:"threshold"`
	TelegramChatID  string          `json:"telegram_chat_id,omitempty"`
	Timestamp       string          `json:"timestamp"`
	RawData         json.RawMessage `json:"raw_data,omitempty"`
}
