package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/repository/dao"
	"gorm.io/gorm"
)

// MerchantRepository 商家偏好存储
//
//go:generate mockgen -source=./merchant.go -destination=./mocks/merchant.mock.go -package=repomocks MerchantRepository
type MerchantRepository interface {
	// FindByMerchantID 找不到时返回 errs.ErrMerchantNotFound
	FindByMerchantID(ctx context.Context, merchantID int64) (domain.MerchantPreferences, error)
	// UpsertToken 保存授权凭证，已有商家的通知偏好保持不变
	UpsertToken(ctx context.Context, merchantID int64, token domain.OAuthToken) (domain.MerchantPreferences, error)
	// UpdateSettings 局部更新通知偏好
	UpdateSettings(ctx context.Context, merchantID int64, update domain.SettingsUpdate) (domain.MerchantPreferences, error)
}

type merchantRepository struct {
	dao dao.MerchantDAO
}

// NewMerchantRepository 创建商家仓库
func NewMerchantRepository(merchantDAO dao.MerchantDAO) MerchantRepository {
	return &merchantRepository{
		dao: merchantDAO,
	}
}

func (r *merchantRepository) FindByMerchantID(ctx context.Context, merchantID int64) (domain.MerchantPreferences, error) {
	m, err := r.dao.GetByID(ctx, merchantID)
	if err != nil {
		return domain.MerchantPreferences{}, r.wrapNotFound(merchantID, err)
	}
	return r.toDomain(m), nil
}

func (r *merchantRepository) UpsertToken(ctx context.Context, merchantID int64, token domain.OAuthToken) (domain.MerchantPreferences, error) {
	err := r.dao.UpsertToken(ctx, r.toEntity(domain.NewMerchantPreferences(merchantID, token)))
	if err != nil {
		return domain.MerchantPreferences{}, err
	}
	return r.FindByMerchantID(ctx, merchantID)
}

func (r *merchantRepository) UpdateSettings(ctx context.Context, merchantID int64, update domain.SettingsUpdate) (domain.MerchantPreferences, error) {
	m, err := r.dao.UpdateSettings(ctx, merchantID, r.toColumns(update))
	if err != nil {
		return domain.MerchantPreferences{}, r.wrapNotFound(merchantID, err)
	}
	return r.toDomain(m), nil
}

func (r *merchantRepository) wrapNotFound(merchantID int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: MerchantID = %d", errs.ErrMerchantNotFound, merchantID)
	}
	return err
}

// toColumns 只生成需要更新的列
func (r *merchantRepository) toColumns(update domain.SettingsUpdate) map[string]any {
	fields := make(map[string]any)
	if update.AlertThreshold != nil {
		fields["alert_threshold"] = *update.AlertThreshold
	}
	if update.NotifyEmail != nil {
		fields["notify_email"] = *update.NotifyEmail
	}
	if update.NotifySMS != nil {
		fields["notify_sms"] = *update.NotifySMS
	}
	if update.NotifyWhatsApp != nil {
		fields["notify_whatsapp"] = *update.NotifyWhatsApp
	}
	if update.NotifyWebhook != nil {
		fields["notify_webhook"] = *update.NotifyWebhook
	}
	if update.AlertEmail != nil {
		fields["alert_email"] = nullString(*update.AlertEmail)
	}
	if update.PhoneNumber != nil {
		fields["phone_number"] = nullString(*update.PhoneNumber)
	}
	if update.CustomWebhookURL != nil {
		fields["custom_webhook_url"] = nullString(*update.CustomWebhookURL)
	}
	if update.TelegramChatID != nil {
		fields["telegram_chat_id"] = nullString(*update.TelegramChatID)
	}
	return fields
}

func (r *merchantRepository) toEntity(p domain.MerchantPreferences) dao.Merchant {
	return dao.Merchant{
		MerchantID:       p.MerchantID,
		AccessToken:      p.Token.AccessToken,
		RefreshToken:     p.Token.RefreshToken,
		ExpiresIn:        p.Token.ExpiresIn,
		AlertThreshold:   p.AlertThreshold,
		AlertEmail:       nullString(p.AlertEmail),
		PhoneNumber:      nullString(p.PhoneNumber),
		CustomWebhookURL: nullString(p.CustomWebhookURL),
		TelegramChatID:   nullString(p.TelegramChatID),
		NotifyEmail:      p.NotifyEmail,
		NotifySMS:        p.NotifySMS,
		NotifyWhatsApp:   p.NotifyWhatsApp,
		NotifyWebhook:    p.NotifyWebhook,
		Ctime:            p.Ctime,
		Utime:            p.Utime,
	}
}

func (r *merchantRepository) toDomain(m dao.Merchant) domain.MerchantPreferences {
	return domain.MerchantPreferences{
		MerchantID:       m.MerchantID,
		AlertThreshold:   m.AlertThreshold,
		NotifyEmail:      m.NotifyEmail,
		NotifySMS:        m.NotifySMS,
		NotifyWhatsApp:   m.NotifyWhatsApp,
		NotifyWebhook:    m.NotifyWebhook,
		AlertEmail:       m.AlertEmail.String,
		PhoneNumber:      m.PhoneNumber.String,
		CustomWebhookURL: m.CustomWebhookURL.String,
		TelegramChatID:   m.TelegramChatID.String,
		Token: domain.OAuthToken{
			AccessToken:  m.AccessToken,
			RefreshToken: m.RefreshToken,
			ExpiresIn:    m.ExpiresIn,
		},
		Ctime: m.Ctime,
		Utime: m.Utime,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
