package ioc

import (
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"gitee.com/flycash/stock-alert/internal/service/sender/metrics"
	"gitee.com/flycash/stock-alert/internal/service/sender/tracing"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/twilio/twilio-go"
)

// InitSenders 只构建配置齐全的渠道，缺失的渠道在分发时被跳过
func InitSenders() map[domain.Channel]sender.Sender {
	senders := make(map[domain.Channel]sender.Sender, len(domain.Channels()))

	if email := initEmailSender(); email != nil {
		senders[domain.ChannelEmail] = email
	}

	sms, whatsapp := initTwilioSenders()
	if sms == nil {
		sms = initRegionalSMSSender()
	}
	if sms != nil {
		senders[domain.ChannelSMS] = sms
	}
	if whatsapp != nil {
		senders[domain.ChannelWhatsApp] = whatsapp
	}

	type WebhookConfig struct {
		Timeout time.Duration `yaml:"timeout"`
	}
	var cfg WebhookConfig
	err := econf.UnmarshalKey("sender.webhook", &cfg)
	if err != nil {
		panic(err)
	}
	senders[domain.ChannelWebhook] = sender.NewWebhookSender(resty.New(), cfg.Timeout)

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	for ch, s := range senders {
		senders[ch] = tracing.NewSender(ch, collector.Wrap(ch, s))
		elog.DefaultLogger.Info("通知渠道已启用", elog.String("channel", ch.String()))
	}
	return senders
}

func initEmailSender() sender.Sender {
	var cfg sender.EmailConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.Username, "EMAIL_USER")
	overrideByEnv(&cfg.Password, "EMAIL_PASS")
	overrideByEnv(&cfg.From, "EMAIL_FROM")
	if cfg.Host == "" {
		return nil
	}
	return sender.NewEmailSender(cfg)
}

func initTwilioSenders() (sms, whatsapp sender.Sender) {
	type Config struct {
		AccountSID     string `yaml:"accountSid"`
		AuthToken      string `yaml:"authToken"`
		PhoneNumber    string `yaml:"phoneNumber"`
		WhatsAppNumber string `yaml:"whatsAppNumber"`
	}
	var cfg Config
	err := econf.UnmarshalKey("twilio", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.AccountSID, "TWILIO_ACCOUNT_SID")
	overrideByEnv(&cfg.AuthToken, "TWILIO_AUTH_TOKEN")
	overrideByEnv(&cfg.PhoneNumber, "TWILIO_PHONE_NUMBER")
	overrideByEnv(&cfg.WhatsAppNumber, "TWILIO_WHATSAPP_NUMBER")
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, nil
	}

	cli := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	if cfg.PhoneNumber != "" {
		sms = sender.NewTwilioSMSSender(cli.Api, cfg.PhoneNumber)
	}
	if cfg.WhatsAppNumber != "" {
		whatsapp = sender.NewTwilioWhatsAppSender(cli.Api, cfg.WhatsAppNumber)
	}
	return sms, whatsapp
}

func initRegionalSMSSender() sender.Sender {
	cfg := loadSMSConfig()
	cli := newSMSClient(cfg)
	if cli == nil {
		return nil
	}
	return sender.NewSMSSender(cli, cfg.SignName, cfg.TemplateID)
}
