package domain

// DefaultAlertThreshold 默认库存预警阈值
const DefaultAlertThreshold = 5

// OAuthToken 平台授权凭证，对分发逻辑不透明
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // 有效期，单位秒
}

// Merchant 授权后从平台获取的商家身份
type Merchant struct {
	ID   int64
	Name string
}

// MerchantPreferences 商家通知偏好，每个商家一条
type MerchantPreferences struct {
	MerchantID     int64
	AlertThreshold int // 库存小于等于该值时预警

	NotifyEmail    bool
	NotifySMS      bool
	NotifyWhatsApp bool
	NotifyWebhook  bool

	AlertEmail       string
	PhoneNumber      string // E.164 格式，短信和 WhatsApp 共用
	CustomWebhookURL string
	TelegramChatID   string // 只透传给 Webhook

	Token OAuthToken

	Ctime int64
	Utime int64
}

// NewMerchantPreferences 首次安装时的默认偏好
func NewMerchantPreferences(merchantID int64, token OAuthToken) MerchantPreferences {
	return MerchantPreferences{
		MerchantID:     merchantID,
		AlertThreshold: DefaultAlertThreshold,
		NotifyEmail:    true,
		Token:          token,
	}
}

// Destination 渠道对应的目标地址
func (p MerchantPreferences) Destination(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return p.AlertEmail
	case ChannelSMS, ChannelWhatsApp:
		return p.PhoneNumber
	case ChannelWebhook:
		return p.CustomWebhookURL
	default:
		return ""
	}
}

// toggle 渠道开关
func (p MerchantPreferences) toggle(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return p.NotifyEmail
	case ChannelSMS:
		return p.NotifySMS
	case ChannelWhatsApp:
		return p.NotifyWhatsApp
	case ChannelWebhook:
		return p.NotifyWebhook
	default:
		return false
	}
}

// Enabled 开关打开并且有目标地址。只开开关没有地址不算错误，直接跳过
func (p MerchantPreferences) Enabled(ch Channel) bool {
	return p.toggle(ch) && p.Destination(ch) != ""
}

// ShouldAlert 库存是否触发预警
func (p MerchantPreferences) ShouldAlert(quantity int) bool {
	return quantity <= p.AlertThreshold
}

// SettingsUpdate 设置的局部更新，nil 表示不修改，空字符串表示清空
type SettingsUpdate struct {
	AlertThreshold *int

	NotifyEmail    *bool
	NotifySMS      *bool
	NotifyWhatsApp *bool
	NotifyWebhook  *bool

	AlertEmail       *string
	PhoneNumber      *string
	CustomWebhookURL *string
	TelegramChatID   *string
}

// IsEmpty 没有任何需要修改的字段
func (u SettingsUpdate) IsEmpty() bool {
	return u.AlertThreshold == nil &&
		u.NotifyEmail == nil && u.NotifySMS == nil && u.NotifyWhatsApp == nil && u.NotifyWebhook == nil &&
		u.AlertEmail == nil && u.PhoneNumber == nil && u.CustomWebhookURL == nil && u.TelegramChatID == nil
}
