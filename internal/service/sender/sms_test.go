package sender

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/service/sender/sms/client"
	smsmocks "gitee.com/flycash/stock-alert/internal/service/sender/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSMSSender_Send(t *testing.T) {
	t.Parallel()

	msg := domain.Message{Params: []domain.TemplateParam{
		{Name: "product", Value: "Blue Mug"},
		{Name: "quantity", Value: "3"},
		{Name: "threshold", Value: "5"},
	}}

	testCases := []struct {
		name    string
		mock    func(c *smsmocks.MockClient)
		wantErr error
	}{
		{
			name: "发送成功",
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(client.SendReq{
					PhoneNumbers: []string{"+8613800000000"},
					SignName:     "库存提醒",
					TemplateID:   "SMS_001",
					TemplateParam: []client.Param{
						{Name: "product", Value: "Blue Mug"},
						{Name: "quantity", Value: "3"},
						{Name: "threshold", Value: "5"},
					},
				}).Return(client.SendResp{
					PhoneNumbers: map[string]client.SendRespStatus{"+8613800000000": {Code: client.OK}},
				}, nil)
			},
		},
		{
			name: "供应商返回错误码",
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any()).Return(client.SendResp{
					PhoneNumbers: map[string]client.SendRespStatus{
						"+8613800000000": {Code: "isv.BUSINESS_LIMIT_CONTROL", Message: "触发流控"},
					},
				}, nil)
			},
			wantErr: errs.ErrSendNotificationFailed,
		},
		{
			name: "没有号码回执",
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any()).Return(client.SendResp{
					RequestID:    "req-1",
					PhoneNumbers: map[string]client.SendRespStatus{},
				}, nil)
			},
			wantErr: errs.ErrSendNotificationFailed,
		},
		{
			name: "调用失败",
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any()).Return(client.SendResp{}, errors.New("network"))
			},
			wantErr: errs.ErrSendNotificationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			c := smsmocks.NewMockClient(ctrl)
			tc.mock(c)

			err := NewSMSSender(c, "库存提醒", "SMS_001").Send(context.Background(), "+8613800000000", msg)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
