package oauth

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Client 平台 OAuth 协作方
//
//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=oauthmocks Client
type Client interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.OAuthToken, error)
	MerchantInfo(ctx context.Context, accessToken string) (domain.Merchant, error)
}

// Config Salla 应用配置
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	Scopes       []string
}

var _ Client = (*SallaClient)(nil)

// SallaClient 基于 oauth2 的 Salla 客户端
type SallaClient struct {
	cfg         *oauth2.Config
	client      *resty.Client
	userInfoURL string
}

// NewSallaClient 换取令牌和查询商家信息共用同一个 HTTP 客户端
func NewSallaClient(cfg Config, client *resty.Client) *SallaClient {
	return &SallaClient{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		client:      client,
		userInfoURL: cfg.UserInfoURL,
	}
}

func (c *SallaClient) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state)
}

func (c *SallaClient) Exchange(ctx context.Context, code string) (domain.OAuthToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client.GetClient())
	tok, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return domain.OAuthToken{}, errors.Wrap(err, "换取访问令牌失败")
	}
	if tok.RefreshToken == "" {
		return domain.OAuthToken{}, errors.New("响应中缺少 refresh_token")
	}
	return domain.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    expiresIn(tok),
	}, nil
}

// expiresIn 优先使用响应中的 expires_in，没有时从过期时间推算
func expiresIn(tok *oauth2.Token) int64 {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	if tok.Expiry.IsZero() {
		return 0
	}
	return int64(time.Until(tok.Expiry).Seconds())
}

type userInfoResp struct {
	Data struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Merchant *struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"merchant"`
	} `json:"data"`
}

func (c *SallaClient) MerchantInfo(ctx context.Context, accessToken string) (domain.Merchant, error) {
	var info userInfoResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(c.userInfoURL)
	if err != nil {
		return domain.Merchant{}, errors.Wrap(err, "查询商家信息失败")
	}
	if resp.StatusCode() != http.StatusOK {
		return domain.Merchant{}, errors.Errorf("查询商家信息失败: StatusCode = %d, Body = %s", resp.StatusCode(), resp.String())
	}

	m := domain.Merchant{ID: info.Data.ID, Name: info.Data.Name}
	// 新版接口把店铺信息放在 merchant 中，data.id 是用户 ID
	if info.Data.Merchant != nil && info.Data.Merchant.ID > 0 {
		m = domain.Merchant{ID: info.Data.Merchant.ID, Name: info.Data.Merchant.Name}
	}
	if m.ID <= 0 {
		return domain.Merchant{}, errors.New("商家信息缺少 ID")
	}
	return m, nil
}
