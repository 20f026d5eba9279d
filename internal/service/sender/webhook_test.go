package sender

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSender_Send(t *testing.T) {
	t.Parallel()

	payload := domain.WebhookPayload{
		Event:           domain.WebhookEventLowStock,
		MerchantID:      1001,
		ProductID:       7,
		ProductName:     "Blue Mug",
		CurrentQuantity: 3,
		Threshold:       5,
		TelegramChatID:  "-100123",
		Timestamp:       "2025-01-01T00:00:00Z",
	}

	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
		errMsg  string
	}{
		{
			name: "2xx成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var got map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "low_stock_alert", got["event"])
				assert.Equal(t, "Blue Mug", got["product_name"])
				assert.Equal(t, "-100123", got["telegram_chat_id"])
				w.WriteHeader(http.StatusAccepted)
			},
		},
		{
			name: "非2xx失败",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(strings.Repeat("x", 1024)))
			},
			wantErr: errs.ErrSendNotificationFailed,
			errMsg:  "StatusCode = 500",
		},
		{
			name: "重定向也算失败",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			},
			wantErr: errs.ErrSendNotificationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			s := NewWebhookSender(resty.New(), time.Second)
			err := s.Send(context.Background(), server.URL, domain.Message{Payload: payload})
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.errMsg != "" {
				assert.Contains(t, err.Error(), tc.errMsg)
				assert.Less(t, len(err.Error()), 512)
			}
		})
	}
}

func TestWebhookSender_Timeout(t *testing.T) {
	t.Parallel()
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(done)

	s := NewWebhookSender(resty.New(), 50*time.Millisecond)
	err := s.Send(context.Background(), server.URL, domain.Message{Payload: domain.WebhookPayload{}})
	assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
}

func TestWebhookSender_TransportError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	s := NewWebhookSender(resty.New(), time.Second)
	err := s.Send(context.Background(), url, domain.Message{Payload: domain.WebhookPayload{}})
	assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
}
