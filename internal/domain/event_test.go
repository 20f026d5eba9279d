package domain

import (
	"testing"

	"gitee.com/flycash/stock-alert/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestProductUpdatedEvent_Validate(t *testing.T) {
	t.Parallel()
	qty := 3

	testCases := []struct {
		name    string
		evt     ProductUpdatedEvent
		wantErr error
	}{
		{
			name: "合法",
			evt:  ProductUpdatedEvent{MerchantID: 1, ProductName: "Coffee", Quantity: &qty},
		},
		{
			name:    "缺少商家",
			evt:     ProductUpdatedEvent{ProductName: "Coffee", Quantity: &qty},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "缺少名称",
			evt:     ProductUpdatedEvent{MerchantID: 1, Quantity: &qty},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "缺少库存",
			evt:     ProductUpdatedEvent{MerchantID: 1, ProductName: "Coffee"},
			wantErr: errs.ErrInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.evt.Validate(), tc.wantErr)
		})
	}
}

func TestNewLowStockEvent(t *testing.T) {
	t.Parallel()
	qty := 2
	evt := ProductUpdatedEvent{MerchantID: 7, ProductID: 11, ProductName: "Tea", Quantity: &qty, Raw: []byte(`{"id":11}`)}
	low := NewLowStockEvent(99, evt, 5)
	assert.Equal(t, LowStockEvent{
		AlertID:         99,
		MerchantID:      7,
		ProductID:       11,
		ProductName:     "Tea",
		CurrentQuantity: 2,
		Threshold:       5,
		RawData:         []byte(`{"id":11}`),
	}, low)
}
