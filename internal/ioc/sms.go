package ioc

import (
	"fmt"

	"gitee.com/flycash/stock-alert/internal/service/sender/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

const (
	smsProviderAliyun  = "aliyun"
	smsProviderTencent = "tencentcloud"
)

type smsConfig struct {
	Provider        string `yaml:"provider"`
	RegionID        string `yaml:"regionId"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	AppID           string `yaml:"appId"`
	SignName        string `yaml:"signName"`
	TemplateID      string `yaml:"templateId"`
}

func loadSMSConfig() smsConfig {
	var cfg smsConfig
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	overrideByEnv(&cfg.AccessKeyID, "SMS_ACCESS_KEY_ID")
	overrideByEnv(&cfg.AccessKeySecret, "SMS_ACCESS_KEY_SECRET")
	return cfg
}

// newSMSClient 区域短信供应商，未配置时返回 nil
func newSMSClient(cfg smsConfig) client.Client {
	var (
		cli client.Client
		err error
	)
	switch cfg.Provider {
	case "":
		return nil
	case smsProviderAliyun:
		cli, err = client.NewAliyunSMS(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret)
	case smsProviderTencent:
		cli, err = client.NewTencentCloudSMS(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AppID)
	default:
		err = fmt.Errorf("未知的短信供应商: %s", cfg.Provider)
	}
	if err != nil {
		panic(err)
	}
	return cli
}
