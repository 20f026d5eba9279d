package web

import (
	"encoding/json"

	"gitee.com/flycash/stock-alert/internal/domain"
)

// Result 接口统一响应
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// WebhookReq 平台推送的事件
type WebhookReq struct {
	Event    string          `json:"event"`
	Merchant json.Number     `json:"merchant"`
	Data     json.RawMessage `json:"data"`
}

// ProductData product.updated 事件的商品数据
type ProductData struct {
	ID       json.Number  `json:"id"`
	Name     string       `json:"name"`
	Quantity *json.Number `json:"quantity"`
}

// SettingsReq 局部更新，未传的字段保持不变
type SettingsReq struct {
	AlertThreshold   *int    `json:"alertThreshold"`
	NotifyEmail      *bool   `json:"notifyEmail"`
	NotifySMS        *bool   `json:"notifySms"`
	NotifyWhatsApp   *bool   `json:"notifyWhatsapp"`
	NotifyWebhook    *bool   `json:"notifyWebhook"`
	AlertEmail       *string `json:"alertEmail"`
	PhoneNumber      *string `json:"phoneNumber"`
	CustomWebhookURL *string `json:"customWebhookUrl"`
	TelegramChatID   *string `json:"telegramChatId"`
}

func (r SettingsReq) toDomain() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		AlertThreshold:   r.AlertThreshold,
		NotifyEmail:      r.NotifyEmail,
		NotifySMS:        r.NotifySMS,
		NotifyWhatsApp:   r.NotifyWhatsApp,
		NotifyWebhook:    r.NotifyWebhook,
		AlertEmail:       r.AlertEmail,
		PhoneNumber:      r.PhoneNumber,
		CustomWebhookURL: r.CustomWebhookURL,
		TelegramChatID:   r.TelegramChatID,
	}
}

// SettingsVO 通知设置，不包含令牌
type SettingsVO struct {
	MerchantID       int64  `json:"merchantId"`
	AlertThreshold   int    `json:"alertThreshold"`
	NotifyEmail      bool   `json:"notifyEmail"`
	NotifySMS        bool   `json:"notifySms"`
	NotifyWhatsApp   bool   `json:"notifyWhatsapp"`
	NotifyWebhook    bool   `json:"notifyWebhook"`
	AlertEmail       string `json:"alertEmail"`
	PhoneNumber      string `json:"phoneNumber"`
	CustomWebhookURL string `json:"customWebhookUrl"`
	TelegramChatID   string `json:"telegramChatId"`
}

func newSettingsVO(p domain.MerchantPreferences) SettingsVO {
	return SettingsVO{
		MerchantID:       p.MerchantID,
		AlertThreshold:   p.AlertThreshold,
		NotifyEmail:      p.NotifyEmail,
		NotifySMS:        p.NotifySMS,
		NotifyWhatsApp:   p.NotifyWhatsApp,
		NotifyWebhook:    p.NotifyWebhook,
		AlertEmail:       p.AlertEmail,
		PhoneNumber:      p.PhoneNumber,
		CustomWebhookURL: p.CustomWebhookURL,
		TelegramChatID:   p.TelegramChatID,
	}
}
