package metrics

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		err        error
		wantStatus string
	}{
		{name: "成功", wantStatus: successStatus},
		{name: "key不存在不算失败", err: redis.Nil, wantStatus: successStatus},
		{name: "失败", err: errors.New("mock error"), wantStatus: errorStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewHook(prometheus.NewRegistry())
			fn := h.ProcessHook(func(_ context.Context, _ redis.Cmder) error {
				return tc.err
			})
			cmd := redis.NewStatusCmd(context.Background(), "set", "k", "v")
			err := fn(context.Background(), cmd)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, float64(1), testutil.ToFloat64(h.commandCounter.WithLabelValues("set", tc.wantStatus)))
		})
	}
}

func TestHook_ProcessPipelineHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())
	fn := h.ProcessPipelineHook(func(_ context.Context, cmds []redis.Cmder) error {
		cmds[1].SetErr(errors.New("mock error"))
		return nil
	})
	cmds := []redis.Cmder{
		redis.NewStatusCmd(context.Background(), "set", "a", "1"),
		redis.NewStatusCmd(context.Background(), "set", "b", "2"),
	}
	require.NoError(t, fn(context.Background(), cmds))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(errorStatus)))
	assert.Equal(t, float64(0), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(successStatus)))
}

func TestHook_DialHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())
	fn := h.DialHook(func(_ context.Context, _, _ string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})
	_, err := fn(context.Background(), "tcp", "127.0.0.1:6379")
	assert.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(h.connectionCounter.WithLabelValues(errorStatus)))
}
