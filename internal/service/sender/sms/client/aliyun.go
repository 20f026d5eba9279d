package client

import (
	"encoding/json"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
)

var _ Client = (*AliyunSMS)(nil)

// AliyunSMS 阿里云短信实现
type AliyunSMS struct {
	client *dysmsapi.Client
}

// NewAliyunSMS 创建阿里云短信实例
func NewAliyunSMS(regionID, accessKeyID, accessKeySecret string) (*AliyunSMS, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(regionID),
		Endpoint:        tea.String("dysmsapi.aliyuncs.com"),
	}

	client, err := dysmsapi.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client}, nil
}

func (a *AliyunSMS) Send(req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	templateParam, err := aliyunTemplateParam(req.TemplateParam)
	if err != nil {
		return SendResp{}, err
	}

	request := &dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(strings.Join(req.PhoneNumbers, ",")),
		SignName:      tea.String(req.SignName),
		TemplateCode:  tea.String(req.TemplateID),
		TemplateParam: tea.String(templateParam),
	}

	response, err := a.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if response.Body == nil || response.Body.Code == nil {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	result := SendResp{
		RequestID:    tea.StringValue(response.Body.RequestId),
		PhoneNumbers: make(map[string]SendRespStatus, len(req.PhoneNumbers)),
	}

	// 阿里云只返回整体状态，每个号码使用相同的状态
	for _, phone := range req.PhoneNumbers {
		result.PhoneNumbers[phone] = SendRespStatus{
			Code:    tea.StringValue(response.Body.Code),
			Message: tea.StringValue(response.Body.Message),
		}
	}
	return result, nil
}

// aliyunTemplateParam 阿里云的模板参数是 JSON 对象
func aliyunTemplateParam(params []Param) (string, error) {
	if len(params) == 0 {
		return "", nil
	}
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Name] = p.Value
	}
	val, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return string(val), nil
}
