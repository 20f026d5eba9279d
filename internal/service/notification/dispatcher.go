package notification

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
	"gitee.com/flycash/stock-alert/internal/service/sender"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const defaultChannelTimeout = 10 * time.Second

// Dispatcher 把一次低库存事件分发到商家开启的所有渠道
// 永远不返回错误，单个渠道的失败体现在结果里
//
//go:generate mockgen -source=./dispatcher.go -destination=./mocks/dispatcher.mock.go -package=notificationmocks Dispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, prefs domain.MerchantPreferences, evt domain.LowStockEvent) domain.ChannelResults
}

// Option 分发器选项
type Option func(d *dispatcher)

// WithChannelTimeout 单个渠道的超时时间
func WithChannelTimeout(timeout time.Duration) Option {
	return func(d *dispatcher) {
		if timeout > 0 {
			d.channelTimeout = timeout
		}
	}
}

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(d *dispatcher) {
		d.now = now
	}
}

type dispatcher struct {
	senders        map[domain.Channel]sender.Sender
	channelTimeout time.Duration
	now            func() time.Time
	logger         *elog.Component
}

// NewDispatcher 创建分发器，senders 中没有的渠道视为不可用
func NewDispatcher(senders map[domain.Channel]sender.Sender, opts ...Option) Dispatcher {
	d := &dispatcher{
		senders:        senders,
		channelTimeout: defaultChannelTimeout,
		now:            time.Now,
		logger:         elog.DefaultLogger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *dispatcher) Dispatch(ctx context.Context, prefs domain.MerchantPreferences, evt domain.LowStockEvent) domain.ChannelResults {
	channels := d.enabledChannels(prefs)
	results := make(domain.ChannelResults, len(channels))
	if len(channels) == 0 {
		return results
	}

	now := d.now()
	var eg errgroup.Group
	for i := range channels {
		ch := channels[i]
		eg.Go(func() error {
			// 每个渠道写自己的位置，结果天然按渠道顺序排列
			results[i] = d.send(ctx, ch, prefs, evt, now)
			return nil
		})
	}
	_ = eg.Wait()

	for _, res := range results.Failed() {
		d.logger.Warn("渠道发送失败",
			elog.Int64("merchantID", prefs.MerchantID),
			elog.Int64("productID", evt.ProductID),
			elog.String("channel", res.Channel.String()),
			elog.String("error", res.ErrorMessage),
		)
	}
	return results
}

// enabledChannels 开关打开、有目标地址并且有发送器的渠道
func (d *dispatcher) enabledChannels(prefs domain.MerchantPreferences) []domain.Channel {
	var channels []domain.Channel
	for _, ch := range domain.Channels() {
		if !prefs.Enabled(ch) {
			continue
		}
		if s, ok := d.senders[ch]; !ok || s == nil {
			d.logger.Debug("渠道不可用，跳过",
				elog.Int64("merchantID", prefs.MerchantID),
				elog.String("channel", ch.String()),
			)
			continue
		}
		channels = append(channels, ch)
	}
	return channels
}

func (d *dispatcher) send(ctx context.Context, ch domain.Channel, prefs domain.MerchantPreferences,
	evt domain.LowStockEvent, now time.Time,
) domain.ChannelResult {
	res := domain.ChannelResult{Channel: ch}
	msg, err := BuildMessage(ch, prefs.TelegramChatID, evt, now)
	if err != nil {
		res.ErrorMessage = err.Error()
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, d.channelTimeout)
	defer cancel()

	// 发送器不响应 ctx 时也不能拖住整次分发
	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("panic: %v", r)
			}
		}()
		errCh <- d.senders[ch].Send(ctx, prefs.Destination(ch), msg)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, ctx.Err())
	}
	if err != nil {
		res.ErrorMessage = err.Error()
		return res
	}
	res.Success = true
	return res
}
