package client

import (
	"fmt"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentCloudSMS)(nil)

// TencentCloudSMS 腾讯云短信实现
type TencentCloudSMS struct {
	client *sms.Client
	appID  string
}

// NewTencentCloudSMS 创建腾讯云短信实例
func NewTencentCloudSMS(regionID, secretID, secretKey, appID string) (*TencentCloudSMS, error) {
	credential := common.NewCredential(secretID, secretKey)
	client, err := sms.NewClient(credential, regionID, profile.NewClientProfile())
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{client: client, appID: appID}, nil
}

func (t *TencentCloudSMS) Send(req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: %v", ErrInvalidParameter, "手机号码不能为空")
	}

	request := sms.NewSendSmsRequest()
	request.SmsSdkAppId = common.StringPtr(t.appID)
	request.SignName = common.StringPtr(req.SignName)
	request.TemplateId = common.StringPtr(req.TemplateID)
	request.PhoneNumberSet = common.StringPtrs(req.PhoneNumbers)
	request.TemplateParamSet = common.StringPtrs(tencentTemplateParam(req.TemplateParam))

	response, err := t.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if response.Response == nil {
		return SendResp{}, fmt.Errorf("%w: %v", ErrSendFailed, "响应异常")
	}

	result := SendResp{
		PhoneNumbers: make(map[string]SendRespStatus, len(response.Response.SendStatusSet)),
	}
	if response.Response.RequestId != nil {
		result.RequestID = *response.Response.RequestId
	}
	for _, status := range response.Response.SendStatusSet {
		if status == nil || status.PhoneNumber == nil {
			continue
		}
		s := SendRespStatus{}
		if status.Code != nil {
			// 腾讯云成功码为 Ok
			s.Code = *status.Code
			if s.Code == "Ok" {
				s.Code = OK
			}
		}
		if status.Message != nil {
			s.Message = *status.Message
		}
		result.PhoneNumbers[*status.PhoneNumber] = s
	}
	return result, nil
}

// tencentTemplateParam 腾讯云按模板中的顺序取值
func tencentTemplateParam(params []Param) []string {
	vals := make([]string, 0, len(params))
	for _, p := range params {
		vals = append(vals, p.Value)
	}
	return vals
}
