package metrics

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSender_Send(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	ok := c.Wrap(domain.ChannelEmail, sender.SenderFunc(func(_ context.Context, _ string, _ domain.Message) error {
		return nil
	}))
	bad := c.Wrap(domain.ChannelWebhook, sender.SenderFunc(func(_ context.Context, _ string, _ domain.Message) error {
		return errors.New("502")
	}))

	assert.NoError(t, ok.Send(context.Background(), "ops@shop.com", domain.Message{}))
	assert.NoError(t, ok.Send(context.Background(), "ops@shop.com", domain.Message{}))
	assert.Error(t, bad.Send(context.Background(), "https://hooks.example.com", domain.Message{}))

	assert.Equal(t, float64(2), testutil.ToFloat64(c.sendCounter.WithLabelValues("email", statusSucceeded)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.sendCounter.WithLabelValues("webhook", statusFailed)))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.sendCounter.WithLabelValues("webhook", statusSucceeded)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.sendDurationSummary))
}
