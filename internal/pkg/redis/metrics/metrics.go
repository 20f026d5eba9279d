package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	successStatus = "success"
	errorStatus   = "error"
)

// Hook 实现了 redis.Hook 接口，为冷却去重用到的 Redis 操作收集指标
type Hook struct {
	commandCounter    *prometheus.CounterVec
	commandDuration   *prometheus.SummaryVec
	pipelineCounter   *prometheus.CounterVec
	connectionCounter *prometheus.CounterVec
}

// NewHook 指标注册到 reg 上，同一个 reg 只能创建一次
func NewHook(reg prometheus.Registerer) *Hook {
	h := &Hook{
		commandCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_commands_total",
				Help: "Total number of Redis commands executed",
			},
			[]string{"command", "status"},
		),
		commandDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "redis_command_duration_seconds",
				Help:       "Redis command execution time in seconds",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"command"},
		),
		pipelineCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_pipeline_commands_total",
				Help: "Total number of Redis pipeline executions",
			},
			[]string{"status"},
		),
		connectionCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_connections_total",
				Help: "Total number of Redis connections created",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(h.commandCounter, h.commandDuration, h.pipelineCounter, h.connectionCounter)
	return h
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if len(cmds) == 0 {
			return err
		}
		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == errorStatus {
				st = errorStatus
				break
			}
		}
		h.pipelineCounter.WithLabelValues(st).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.connectionCounter.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

// redis.Nil 表示 key 不存在，不算失败
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return errorStatus
	}
	return successStatus
}
