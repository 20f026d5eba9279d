package client

import "errors"

const OK = "OK"

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("发送短信失败")
)

// Client 区域短信供应商客户端
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks Client
type Client interface {
	Send(req SendReq) (SendResp, error)
}

// SendReq 发送请求。模板参数按顺序排列，
// 阿里云按名称取值，腾讯云按顺序取值
type SendReq struct {
	PhoneNumbers  []string
	SignName      string
	TemplateID    string
	TemplateParam []Param
}

// Param 模板参数
type Param struct {
	Name  string
	Value string
}

// SendResp 发送结果
type SendResp struct {
	RequestID    string
	PhoneNumbers map[string]SendRespStatus
}

// SendRespStatus 单个号码的发送状态
type SendRespStatus struct {
	Code    string
	Message string
}
