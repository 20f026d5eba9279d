package domain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Channel 通知渠道
type Channel string

const (
	ChannelEmail    Channel = "email"    // 邮件
	ChannelSMS      Channel = "sms"      // 短信
	ChannelWhatsApp Channel = "whatsapp" // WhatsApp
	ChannelWebhook  Channel = "webhook"  // 自定义 Webhook
)

// Channels 返回全部渠道，顺序即评估顺序，也是结果的排列顺序
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelWebhook}
}

func (c Channel) String() string {
	return string(c)
}

// ChannelResult 单个渠道的发送结果，只有实际尝试过的渠道才会产生结果
type ChannelResult struct {
	Channel      Channel `json:"channel"`
	Success      bool    `json:"success"`
	ErrorMessage string  `json:"errorMessage,omitempty"`
}

// ChannelResults 一次分发的全部结果
type ChannelResults []ChannelResult

// Failed 返回失败的渠道结果
func (r ChannelResults) Failed() ChannelResults {
	var failed ChannelResults
	for i := range r {
		if !r[i].Success {
			failed = append(failed, r[i])
		}
	}
	return failed
}

// Succeeded 成功的渠道数
func (r ChannelResults) Succeeded() int {
	cnt := 0
	for i := range r {
		if r[i].Success {
			cnt++
		}
	}
	return cnt
}

// Err 将所有失败聚合为一个错误，没有失败时返回 nil。只用于日志
func (r ChannelResults) Err() error {
	var err *multierror.Error
	for _, res := range r.Failed() {
		err = multierror.Append(err, fmt.Errorf("%s: %s", res.Channel, res.ErrorMessage))
	}
	return err.ErrorOrNil()
}
