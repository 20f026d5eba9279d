package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var merchantColumns = []string{
	"merchant_id", "access_token", "refresh_token", "expires_in", "alert_threshold",
	"alert_email", "phone_number", "custom_webhook_url", "telegram_chat_id",
	"notify_email", "notify_sms", "notify_whatsapp", "notify_webhook", "ctime", "utime",
}

func TestMerchantDAOSuite(t *testing.T) {
	suite.Run(t, new(MerchantDAOTestSuite))
}

type MerchantDAOTestSuite struct {
	suite.Suite
	sqlDB *sql.DB
	mock  sqlmock.Sqlmock
	dao   MerchantDAO
}

func (s *MerchantDAOTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.sqlDB = sqlDB
	s.mock = mock
	s.dao = NewMerchantDAO(db)
}

func (s *MerchantDAOTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.sqlDB.Close()
}

func (s *MerchantDAOTestSuite) merchantRows(threshold int) *sqlmock.Rows {
	return sqlmock.NewRows(merchantColumns).AddRow(
		int64(1001), "access", "refresh", int64(1209600), threshold,
		"ops@shop.com", "+966500000000", nil, nil,
		true, true, false, false, int64(1), int64(2),
	)
}

func (s *MerchantDAOTestSuite) TestGetByID() {
	t := s.T()
	s.mock.ExpectQuery("SELECT \\* FROM `merchants` WHERE merchant_id = \\?").
		WillReturnRows(s.merchantRows(5))

	m, err := s.dao.GetByID(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), m.MerchantID)
	assert.Equal(t, 5, m.AlertThreshold)
	assert.Equal(t, sql.NullString{String: "ops@shop.com", Valid: true}, m.AlertEmail)
	assert.False(t, m.CustomWebhookURL.Valid)
	assert.True(t, m.NotifyEmail)
	assert.True(t, m.NotifySMS)
	assert.False(t, m.NotifyWhatsApp)
}

func (s *MerchantDAOTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery("SELECT \\* FROM `merchants`").
		WillReturnRows(sqlmock.NewRows(merchantColumns))

	_, err := s.dao.GetByID(context.Background(), 404)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *MerchantDAOTestSuite) TestUpsertToken() {
	s.mock.ExpectExec("INSERT INTO `merchants` .* ON DUPLICATE KEY UPDATE `access_token`=VALUES\\(`access_token`\\),`refresh_token`=VALUES\\(`refresh_token`\\),`expires_in`=VALUES\\(`expires_in`\\),`utime`=VALUES\\(`utime`\\)").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.dao.UpsertToken(context.Background(), Merchant{
		MerchantID:     1001,
		AccessToken:    "access",
		RefreshToken:   "refresh",
		ExpiresIn:      1209600,
		AlertThreshold: 5,
		NotifyEmail:    true,
	})
	s.NoError(err)
}

func (s *MerchantDAOTestSuite) TestUpsertToken_DuplicateFallback() {
	s.mock.ExpectExec("INSERT INTO `merchants`").
		WillReturnError(&mysql.MySQLError{Number: ErrDuplicateKeyCode, Message: "Duplicate entry"})
	s.mock.ExpectExec("UPDATE `merchants` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.dao.UpsertToken(context.Background(), Merchant{MerchantID: 1001, AccessToken: "a", RefreshToken: "r"})
	s.NoError(err)
}

func (s *MerchantDAOTestSuite) TestUpsertToken_Error() {
	s.mock.ExpectExec("INSERT INTO `merchants`").
		WillReturnError(errors.New("connection refused"))

	err := s.dao.UpsertToken(context.Background(), Merchant{MerchantID: 1001})
	s.EqualError(err, "connection refused")
}

func (s *MerchantDAOTestSuite) TestUpdateSettings() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery("SELECT \\* FROM `merchants` WHERE merchant_id = \\?").
		WillReturnRows(s.merchantRows(5))
	s.mock.ExpectExec("UPDATE `merchants` SET `alert_threshold`=\\?,`utime`=\\? WHERE merchant_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectQuery("SELECT \\* FROM `merchants` WHERE merchant_id = \\?").
		WillReturnRows(s.merchantRows(2))
	s.mock.ExpectCommit()

	m, err := s.dao.UpdateSettings(context.Background(), 1001, map[string]any{"alert_threshold": 2})
	s.Require().NoError(err)
	s.Equal(2, m.AlertThreshold)
}

func (s *MerchantDAOTestSuite) TestUpdateSettings_NotFound() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery("SELECT \\* FROM `merchants`").
		WillReturnRows(sqlmock.NewRows(merchantColumns))
	s.mock.ExpectRollback()

	_, err := s.dao.UpdateSettings(context.Background(), 404, map[string]any{"alert_threshold": 2})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}
