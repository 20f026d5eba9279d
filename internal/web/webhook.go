package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"gitee.com/flycash/stock-alert/internal/domain"
	"gitee.com/flycash/stock-alert/internal/errs"
)

// verifySignature 校验 HMAC-SHA256 十六进制签名
func verifySignature(secret string, body []byte, signature string) bool {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	expected, err := hex.DecodeString(signature)
	if err != nil || len(expected) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}

// toProductUpdatedEvent 字段缺失不在这里报错，交给 Validate
func (r WebhookReq) toProductUpdatedEvent() (domain.ProductUpdatedEvent, error) {
	evt := domain.ProductUpdatedEvent{Event: r.Event, Raw: r.Data}
	if r.Merchant != "" {
		mid, err := r.Merchant.Int64()
		if err != nil {
			return evt, fmt.Errorf("%w: merchant = %s", errs.ErrInvalidParameter, r.Merchant)
		}
		evt.MerchantID = mid
	}
	if r.Event != domain.EventProductUpdated || len(r.Data) == 0 {
		return evt, nil
	}

	var data ProductData
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return evt, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	evt.ProductName = data.Name
	if data.ID != "" {
		pid, err := data.ID.Int64()
		if err != nil {
			return evt, fmt.Errorf("%w: id = %s", errs.ErrInvalidParameter, data.ID)
		}
		evt.ProductID = pid
	}
	if data.Quantity != nil {
		q, err := data.Quantity.Int64()
		if err != nil {
			return evt, fmt.Errorf("%w: quantity = %s", errs.ErrInvalidParameter, *data.Quantity)
		}
		quantity := int(q)
		evt.Quantity = &quantity
	}
	return evt, nil
}
