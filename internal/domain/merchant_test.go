package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerchantPreferences_Enabled(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		prefs MerchantPreferences
		want  map[Channel]bool
	}{
		{
			name:  "全部关闭",
			prefs: MerchantPreferences{AlertEmail: "a@b.com", PhoneNumber: "+966500000000", CustomWebhookURL: "https://x.io"},
			want:  map[Channel]bool{ChannelEmail: false, ChannelSMS: false, ChannelWhatsApp: false, ChannelWebhook: false},
		},
		{
			name: "开关打开但没有地址",
			prefs: MerchantPreferences{
				NotifyEmail: true, NotifySMS: true, NotifyWhatsApp: true, NotifyWebhook: true,
			},
			want: map[Channel]bool{ChannelEmail: false, ChannelSMS: false, ChannelWhatsApp: false, ChannelWebhook: false},
		},
		{
			name: "短信和WhatsApp共用手机号",
			prefs: MerchantPreferences{
				NotifySMS: true, NotifyWhatsApp: true, PhoneNumber: "+966500000000",
			},
			want: map[Channel]bool{ChannelEmail: false, ChannelSMS: true, ChannelWhatsApp: true, ChannelWebhook: false},
		},
		{
			name: "全部可用",
			prefs: MerchantPreferences{
				NotifyEmail: true, NotifySMS: true, NotifyWhatsApp: true, NotifyWebhook: true,
				AlertEmail: "a@b.com", PhoneNumber: "+966500000000", CustomWebhookURL: "https://x.io",
			},
			want: map[Channel]bool{ChannelEmail: true, ChannelSMS: true, ChannelWhatsApp: true, ChannelWebhook: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for ch, want := range tc.want {
				assert.Equal(t, want, tc.prefs.Enabled(ch), ch)
			}
		})
	}
}

func TestMerchantPreferences_ShouldAlert(t *testing.T) {
	t.Parallel()
	prefs := NewMerchantPreferences(1, OAuthToken{})
	assert.Equal(t, DefaultAlertThreshold, prefs.AlertThreshold)
	assert.True(t, prefs.NotifyEmail)
	assert.True(t, prefs.ShouldAlert(3))
	assert.True(t, prefs.ShouldAlert(5))
	assert.False(t, prefs.ShouldAlert(10))
}

func TestSettingsUpdate_IsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, SettingsUpdate{}.IsEmpty())
	empty := ""
	assert.False(t, SettingsUpdate{AlertEmail: &empty}.IsEmpty())
}
