package merchant

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/pkg/jwt"
	"gitee.com/flycash/stock-alert/internal/repository"
	"gitee.com/flycash/stock-alert/internal/service/oauth"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/elog"
)

const (
	stateTTL = 10 * time.Minute

	claimType       = "typ"
	claimMerchantID = "mid"
	claimNonce      = "nonce"

	typeState   = "oauth_state"
	typeSession = "session"
)

// InstallResult 安装完成后的商家和会话令牌
type InstallResult struct {
	Merchant domain.Merchant
	Session  string
}

// Service 商家安装和通知设置
//
//go:generate mockgen -source=./service.go -destination=./mocks/merchant.mock.go -package=merchantmocks Service
type Service interface {
	// LoginURL 生成带 state 的授权地址
	LoginURL(ctx context.Context) (string, error)
	// Install 处理授权回调，失败统一返回 errs.ErrOAuthFailed
	Install(ctx context.Context, code, state string) (InstallResult, error)
	GetSettings(ctx context.Context, merchantID int64) (domain.MerchantPreferences, error)
	UpdateSettings(ctx context.Context, merchantID int64, update domain.SettingsUpdate) (domain.MerchantPreferences, error)
	// ParseSession 校验会话令牌并返回商家 ID
	ParseSession(token string) (int64, error)
}

type service struct {
	repo     repository.MerchantRepository
	oauth    oauth.Client
	auth     *jwt.JwtAuth
	validate *validator.Validate
	logger   *elog.Component
}

// NewService 创建商家服务
func NewService(repo repository.MerchantRepository, client oauth.Client, auth *jwt.JwtAuth) Service {
	return &service{
		repo:     repo,
		oauth:    client,
		auth:     auth,
		validate: validator.New(),
		logger:   elog.DefaultLogger,
	}
}

func (s *service) LoginURL(_ context.Context) (string, error) {
	nonce, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("生成 state 失败: %w", err)
	}
	state, err := s.auth.Encode(jwtv4.MapClaims{
		claimType:  typeState,
		claimNonce: nonce.String(),
		"exp":      time.Now().Add(stateTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("生成 state 失败: %w", err)
	}
	return s.oauth.AuthCodeURL(state), nil
}

func (s *service) Install(ctx context.Context, code, state string) (InstallResult, error) {
	if err := s.verifyState(state); err != nil {
		return InstallResult{}, s.installFailed("state 校验失败", err)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return InstallResult{}, s.installFailed("换取令牌失败", err)
	}

	m, err := s.oauth.MerchantInfo(ctx, token.AccessToken)
	if err != nil {
		return InstallResult{}, s.installFailed("查询商家信息失败", err)
	}

	if _, err = s.repo.UpsertToken(ctx, m.ID, token); err != nil {
		return InstallResult{}, s.installFailed("保存令牌失败", err)
	}

	session, err := s.auth.Encode(jwtv4.MapClaims{
		claimType:       typeSession,
		claimMerchantID: m.ID,
	})
	if err != nil {
		return InstallResult{}, s.installFailed("生成会话失败", err)
	}

	s.logger.Info("商家完成授权", elog.Int64("merchantID", m.ID), elog.String("name", m.Name))
	return InstallResult{Merchant: m, Session: session}, nil
}

func (s *service) installFailed(msg string, err error) error {
	s.logger.Error("OAuth 安装失败", elog.String("step", msg), elog.FieldErr(err))
	return fmt.Errorf("%w: %s: %w", errs.ErrOAuthFailed, msg, err)
}

func (s *service) verifyState(state string) error {
	if state == "" {
		return fmt.Errorf("%w: state 为空", errs.ErrInvalidParameter)
	}
	claims, err := s.auth.Decode(state)
	if err != nil {
		return err
	}
	if typ, _ := claims[claimType].(string); typ != typeState {
		return fmt.Errorf("%w: 令牌类型 %s", errs.ErrInvalidParameter, typ)
	}
	return nil
}

func (s *service) GetSettings(ctx context.Context, merchantID int64) (domain.MerchantPreferences, error) {
	return s.repo.FindByMerchantID(ctx, merchantID)
}

func (s *service) UpdateSettings(ctx context.Context, merchantID int64, update domain.SettingsUpdate) (domain.MerchantPreferences, error) {
	if err := s.validateUpdate(update); err != nil {
		return domain.MerchantPreferences{}, err
	}
	if update.IsEmpty() {
		return s.repo.FindByMerchantID(ctx, merchantID)
	}
	return s.repo.UpdateSettings(ctx, merchantID, update)
}

// validateUpdate 空字符串表示清空，不做格式校验
func (s *service) validateUpdate(update domain.SettingsUpdate) error {
	if update.AlertThreshold != nil && *update.AlertThreshold < 0 {
		return fmt.Errorf("%w: alertThreshold 不能为负数", errs.ErrInvalidParameter)
	}
	if update.AlertEmail != nil && *update.AlertEmail != "" {
		if err := s.validate.Var(*update.AlertEmail, "email"); err != nil {
			return fmt.Errorf("%w: alertEmail 格式错误", errs.ErrInvalidParameter)
		}
	}
	if update.PhoneNumber != nil && *update.PhoneNumber != "" {
		if err := s.validate.Var(*update.PhoneNumber, "e164"); err != nil {
			return fmt.Errorf("%w: phoneNumber 必须是 E.164 格式", errs.ErrInvalidParameter)
		}
	}
	if update.CustomWebhookURL != nil && *update.CustomWebhookURL != "" {
		if err := s.validateWebhookURL(*update.CustomWebhookURL); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) validateWebhookURL(raw string) error {
	if err := s.validate.Var(raw, "url"); err != nil {
		return fmt.Errorf("%w: customWebhookUrl 格式错误", errs.ErrInvalidParameter)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: customWebhookUrl 只支持 http 和 https", errs.ErrInvalidParameter)
	}
	return nil
}

func (s *service) ParseSession(token string) (int64, error) {
	if token == "" {
		return 0, errs.ErrUnauthorized
	}
	claims, err := s.auth.Decode(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}
	if typ, _ := claims[claimType].(string); typ != typeSession {
		return 0, fmt.Errorf("%w: 令牌类型 %s", errs.ErrUnauthorized, typ)
	}
	// JSON 数字解析为 float64
	mid, ok := claims[claimMerchantID].(float64)
	if !ok || mid <= 0 {
		return 0, fmt.Errorf("%w: 缺少商家 ID", errs.ErrUnauthorized)
	}
	return int64(mid), nil
}
