package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

// Collector 渠道发送指标，所有渠道共用一组指标
type Collector struct {
	sendCounter         *prometheus.CounterVec
	sendDurationSummary *prometheus.SummaryVec
}

// NewCollector 创建并注册指标
func NewCollector(reg prometheus.Registerer) *Collector {
	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_channel_send_total",
			Help: "渠道发送次数",
		},
		[]string{"channel", "status"},
	)
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "alert_channel_send_duration_seconds",
			Help:       "渠道发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"channel", "status"},
	)
	reg.MustRegister(sendCounter, sendDurationSummary)
	return &Collector{
		sendCounter:         sendCounter,
		sendDurationSummary: sendDurationSummary,
	}
}

// Wrap 为发送器添加指标收集
func (c *Collector) Wrap(ch domain.Channel, s sender.Sender) sender.Sender {
	return &Sender{
		sender:    s,
		channel:   ch,
		collector: c,
	}
}

// Sender 为发送器添加指标收集的装饰器
type Sender struct {
	sender    sender.Sender
	channel   domain.Channel
	collector *Collector
}

func (s *Sender) Send(ctx context.Context, destination string, msg domain.Message) error {
	startTime := time.Now()
	err := s.sender.Send(ctx, destination, msg)
	duration := time.Since(startTime).Seconds()

	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	s.collector.sendCounter.WithLabelValues(s.channel.String(), status).Inc()
	s.collector.sendDurationSummary.WithLabelValues(s.channel.String(), status).Observe(duration)
	return err
}
