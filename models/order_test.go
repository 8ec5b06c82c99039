package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	assert.Equal(t, 300, ShippingFee(PaymentCOD))
	assert.Equal(t, 0, ShippingFee(PaymentPrepaid))
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, OrderStatus("returned").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCOD.Valid())
	assert.True(t, PaymentPrepaid.Valid())
	assert.False(t, PaymentMethod("PayPal").Valid())
}
