package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateKeyCode MySQL 主键冲突
const ErrDuplicateKeyCode uint16 = 1062

// Merchant 商家表，保存授权凭证和通知偏好
type Merchant struct {
	MerchantID   int64  `gorm:"primaryKey;autoIncrement:false;type:BIGINT;comment:'平台商家ID'"`
	AccessToken  string `gorm:"type:TEXT;not null"`
	RefreshToken string `gorm:"type:TEXT;not null"`
	ExpiresIn    int64  `gorm:"type:BIGINT;not null;comment:'有效期，单位秒'"`

	AlertThreshold int `gorm:"type:INT;not null;default:5;comment:'库存预警阈值'"`

	AlertEmail       sql.NullString `gorm:"type:VARCHAR(255)"`
	PhoneNumber      sql.NullString `gorm:"type:VARCHAR(32);comment:'E.164格式'"`
	CustomWebhookURL sql.NullString `gorm:"type:VARCHAR(1024)"`
	TelegramChatID   sql.NullString `gorm:"type:VARCHAR(64)"`

	NotifyEmail    bool `gorm:"not null"`
	NotifySMS      bool `gorm:"column:notify_sms;not null"`
	NotifyWhatsApp bool `gorm:"column:notify_whatsapp;not null"`
	NotifyWebhook  bool `gorm:"not null"`

	Ctime int64
	Utime int64
}

// TableName 重命名表
func (Merchant) TableName() string {
	return "merchants"
}

//go:generate mockgen -source=./merchant.go -destination=./mocks/merchant.mock.go -package=daomocks MerchantDAO
type MerchantDAO interface {
	GetByID(ctx context.Context, merchantID int64) (Merchant, error)
	// UpsertToken 不存在时按默认值创建，存在时只更新凭证相关的列
	UpsertToken(ctx context.Context, m Merchant) error
	// UpdateSettings 只更新 fields 中给出的列，返回更新后的记录
	UpdateSettings(ctx context.Context, merchantID int64, fields map[string]any) (Merchant, error)
}

type merchantDAO struct {
	db *egorm.Component
}

// NewMerchantDAO 创建商家DAO
func NewMerchantDAO(db *egorm.Component) MerchantDAO {
	return &merchantDAO{
		db: db,
	}
}

func (d *merchantDAO) GetByID(ctx context.Context, merchantID int64) (Merchant, error) {
	var m Merchant
	err := d.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&m).Error
	return m, err
}

// tokenColumns 重新授权时允许覆盖的列，通知偏好不能被默认值冲掉
var tokenColumns = []string{
	"access_token",
	"refresh_token",
	"expires_in",
	"utime",
}

func (d *merchantDAO) UpsertToken(ctx context.Context, m Merchant) error {
	now := time.Now().UnixMilli()
	m.Ctime = now
	m.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns(tokenColumns),
	}).Create(&m).Error
	if isDuplicateKey(err) {
		// 并发安装时兜底，退化为只更新凭证
		return d.updateToken(ctx, m)
	}
	return err
}

func (d *merchantDAO) updateToken(ctx context.Context, m Merchant) error {
	return d.db.WithContext(ctx).Model(&Merchant{}).
		Where("merchant_id = ?", m.MerchantID).
		Updates(map[string]any{
			"access_token":  m.AccessToken,
			"refresh_token": m.RefreshToken,
			"expires_in":    m.ExpiresIn,
			"utime":         m.Utime,
		}).Error
}

func (d *merchantDAO) UpdateSettings(ctx context.Context, merchantID int64, fields map[string]any) (Merchant, error) {
	var res Merchant
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m Merchant
		if err := tx.Where("merchant_id = ?", merchantID).First(&m).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			updates := make(map[string]any, len(fields)+1)
			for k, v := range fields {
				updates[k] = v
			}
			updates["utime"] = time.Now().UnixMilli()
			if err := tx.Model(&Merchant{}).Where("merchant_id = ?", merchantID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Where("merchant_id = ?", merchantID).First(&res).Error
	})
	return res, err
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == ErrDuplicateKeyCode
}
