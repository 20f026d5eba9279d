package domain

// AlertStatus 一次 Webhook 处理的结论
type AlertStatus string

const (
	AlertStatusIgnored          AlertStatus = "ignored"            // 不关心的事件
	AlertStatusInvalid          AlertStatus = "invalid"            // 缺少必要字段
	AlertStatusMerchantNotFound AlertStatus = "merchant_not_found" // 商家未安装
	AlertStatusAboveThreshold   AlertStatus = "above_threshold"    // 库存充足
	AlertStatusDuplicated       AlertStatus = "duplicated"         // 冷却期内重复
	AlertStatusDispatched       AlertStatus = "dispatched"         // 已分发
)

// AlertOutcome Webhook 处理结果
type AlertOutcome struct {
	Status  AlertStatus
	AlertID uint64
	Results ChannelResults
}
