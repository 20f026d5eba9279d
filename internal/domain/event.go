package domain

import (
	"encoding/json"
	"fmt"

	"gitee.com/flycash/stock-alert/internal/errs"
)

// EventProductUpdated 平台推送的商品更新事件
const EventProductUpdated = "product.updated"

// ProductUpdatedEvent 从 Webhook 请求中解析出来的商品事件
type ProductUpdatedEvent struct {
	Event       string
	MerchantID  int64
	ProductID   int64
	ProductName string
	Quantity    *int            // 平台可能不带库存字段
	Raw         json.RawMessage // 原始 data，透传给下游
}

// Validate 缺少商家、名称或库存的事件不处理
func (e ProductUpdatedEvent) Validate() error {
	if e.MerchantID <= 0 {
		return fmt.Errorf("%w: MerchantID = %d", errs.ErrInvalidParameter, e.MerchantID)
	}
	if e.ProductName == "" {
		return fmt.Errorf("%w: ProductName 为空", errs.ErrInvalidParameter)
	}
	if e.Quantity == nil {
		return fmt.Errorf("%w: Quantity 缺失", errs.ErrInvalidParameter)
	}
	return nil
}

// LowStockEvent 低库存事件，只在一次 Webhook 处理中存在，不落库
type LowStockEvent struct {
	AlertID         uint64
	MerchantID      int64
	ProductID       int64
	ProductName     string
	CurrentQuantity int
	Threshold       int // 触发时的阈值快照
	RawData         json.RawMessage
}

// NewLowStockEvent 用商家当前阈值构造低库存事件
func NewLowStockEvent(alertID uint64, evt ProductUpdatedEvent, threshold int) LowStockEvent {
	return LowStockEvent{
		AlertID:         alertID,
		MerchantID:      evt.MerchantID,
		ProductID:       evt.ProductID,
		ProductName:     evt.ProductName,
		CurrentQuantity: *evt.Quantity,
		Threshold:       threshold,
		RawData:         evt.Raw,
	}
}
