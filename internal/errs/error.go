package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter       = errors.New("参数错误")
	ErrSendNotificationFailed = errors.New("发送通知失败")
	ErrChannelUnavailable     = errors.New("渠道不可用")

	ErrMerchantNotFound = errors.New("商家不存在")
	ErrOAuthFailed      = errors.New("授权失败")
	ErrUnauthorized     = errors.New("未登录或会话已失效")
	ErrForbidden        = errors.New("无权访问该商家")
)
