package sender

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"github.com/wneessen/go-mail"
)

var _ Sender = (*EmailSender)(nil)

// EmailConfig SMTP 配置
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // 为空时使用 Username
	SSL      bool
	Timeout  time.Duration
}

// EmailSender 邮件发送器，每次发送单独建立 SMTP 连接
type EmailSender struct {
	cfg EmailConfig
}

// NewEmailSender 创建邮件发送器
func NewEmailSender(cfg EmailConfig) *EmailSender {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &EmailSender{cfg: cfg}
}

func (s *EmailSender) Send(ctx context.Context, destination string, msg domain.Message) error {
	m, err := s.newMsg(destination, msg)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}
	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	if err = c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return nil
}

func (s *EmailSender) newMsg(to string, msg domain.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, err
	}
	if err := m.To(to); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	}
	return m, nil
}
