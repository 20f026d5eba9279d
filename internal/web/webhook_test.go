package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	repomocks "gitee.com/flycash/stock-alert/internal/repository/mocks"
	"gitee.com/flycash/stock-alert/internal/service/alert"
	merchantmocks "gitee.com/flycash/stock-alert/internal/service/merchant/mocks"
	"gitee.com/flycash/stock-alert/internal/service/notification"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	body := []byte(`{"event":"product.updated"}`)
	sig := sign("secret", string(body))
	assert.True(t, verifySignature("secret", body, sig))
	assert.True(t, verifySignature("secret", body, "sha256="+sig))
	assert.False(t, verifySignature("other", body, sig))
	assert.False(t, verifySignature("secret", body, ""))
}

// 请求超时远小于渠道超时，慢渠道仍然要按自身超时完成发送
func TestWebhook_DispatchNotBoundByRequestTimeout(t *testing.T) {
	econf.Set("slowserver", map[string]any{"contextTimeout": "100ms"})
	server := egin.Load("slowserver").Build()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockMerchantRepository(ctrl)
	repo.EXPECT().FindByMerchantID(gomock.Any(), int64(1001)).Return(domain.MerchantPreferences{
		MerchantID:       1001,
		AlertThreshold:   5,
		NotifyWebhook:    true,
		CustomWebhookURL: "https://hooks.example.com/stock",
	}, nil)

	type sendResult struct {
		err      error
		deadline time.Duration
	}
	sent := make(chan sendResult, 1)
	slow := sender.SenderFunc(func(ctx context.Context, _ string, _ domain.Message) error {
		res := sendResult{}
		if d, ok := ctx.Deadline(); ok {
			res.deadline = time.Until(d)
		}
		select {
		case <-time.After(300 * time.Millisecond):
		case <-ctx.Done():
			res.err = ctx.Err()
		}
		sent <- res
		return res.err
	})

	dispatcher := notification.NewDispatcher(map[domain.Channel]sender.Sender{
		domain.ChannelWebhook: slow,
	}, notification.WithChannelTimeout(10*time.Second))
	idGen := sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) { return 1, nil },
	})
	alertSvc := alert.NewService(repo, dispatcher, nil, idGen)
	NewHandler(alertSvc, merchantmocks.NewMockService(ctrl), Config{}).PublicRoutes(server.Engine)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/app-events",
		strings.NewReader(`{"event":"product.updated","merchant":1001,"data":{"id":7,"name":"Blue Mug","quantity":3}}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, webhookReceived, recorder.Body.String())

	select {
	case res := <-sent:
		require.NoError(t, res.err)
		assert.Greater(t, res.deadline, time.Second)
	case <-time.After(5 * time.Second):
		t.Fatal("渠道未被调用")
	}
}
