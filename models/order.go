package models

import (
	"time"
)

// OrderStatus enumerates the lifecycle of an order. "confirmed" exists in
// stored data but no exposed transition enters it.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// PaymentMethod is how the customer settles an order.
type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "COD"
	PaymentPrepaid PaymentMethod = "Easypaisa_Jazzcash"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentPrepaid
}

// FlatShippingFee is charged on every COD order, in rupees.
const FlatShippingFee = 300

// ShippingFee returns the fee for a payment method. Prepaid orders ship free.
func ShippingFee(m PaymentMethod) int {
	if m == PaymentPrepaid {
		return 0
	}
	return FlatShippingFee
}

// Order represents a placed order
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Zip           string        `json:"zip,omitempty"`
	Items         []CartItem    `json:"items"`
	TotalAmount   int           `json:"totalAmount"`
	ShippingFee   int           `json:"shippingFee"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// OrderDraft carries the checkout-supplied fields of a new order.
// ID, Status, CreatedAt and the money fields are assigned by the order
// service from the items and payment method.
type OrderDraft struct {
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Zip           string        `json:"zip,omitempty"`
	Items         []CartItem    `json:"items"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
