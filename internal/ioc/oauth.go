package ioc

import (
	"gitee.com/flycash/stock-alert/internal/service/oauth"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
)

const (
	defaultSallaAuthURL     = "https://accounts.salla.sa/oauth2/auth"
	defaultSallaTokenURL    = "https://accounts.salla.sa/oauth2/token"
	defaultSallaUserInfoURL = "https://api.salla.dev/admin/v2/oauth2/user/info"
)

func InitSallaClient() oauth.Client {
	type Config struct {
		ClientID     string   `yaml:"clientId"`
		ClientSecret string   `yaml:"clientSecret"`
		CallbackURL  string   `yaml:"callbackUrl"`
		AuthURL      string   `yaml:"authUrl"`
		TokenURL     string   `yaml:"tokenUrl"`
		UserInfoURL  string   `yaml:"userInfoUrl"`
		Scopes       []string `yaml:"scopes"`
	}
	cfg := Config{
		AuthURL:     defaultSallaAuthURL,
		TokenURL:    defaultSallaTokenURL,
		UserInfoURL: defaultSallaUserInfoURL,
		Scopes:      []string{"products.read", "offline_access"},
	}
	err := econf.UnmarshalKey("salla", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.ClientID, "SALLA_CLIENT_ID")
	overrideByEnv(&cfg.ClientSecret, "SALLA_CLIENT_SECRET")
	overrideByEnv(&cfg.CallbackURL, "SALLA_CALLBACK_URL")
	overrideByEnv(&cfg.AuthURL, "SALLA_AUTHORIZATION_URL")
	overrideByEnv(&cfg.TokenURL, "SALLA_TOKEN_URL")
	overrideByEnv(&cfg.UserInfoURL, "SALLA_USER_INFO_URL")

	return oauth.NewSallaClient(oauth.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		AuthURL:      cfg.AuthURL,
		TokenURL:     cfg.TokenURL,
		UserInfoURL:  cfg.UserInfoURL,
		Scopes:       cfg.Scopes,
	}, resty.New())
}
