package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"thrift-rizz/models"
)

// ErrCartEmpty is returned when checking out a cart with no items.
var ErrCartEmpty = errors.New("cart is empty")

// Carts holds in-memory shopping carts keyed by an opaque token issued on
// the first add. Carts are not durable; only a successful checkout empties
// one.
type Carts struct {
	orders *Orders

	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewCarts creates the cart service on top of the order service.
func NewCarts(orders *Orders) *Carts {
	return &Carts{
		orders: orders,
		carts:  make(map[string][]models.CartItem),
	}
}

// Add appends a snapshot of p to the cart for token, assigning a fresh
// cart-scoped id so the same product can sit in the cart twice. An empty
// token starts a new cart; the (possibly new) token is returned with the
// item.
func (c *Carts) Add(token string, p models.Product) (string, models.CartItem) {
	if token == "" {
		token = uuid.NewString()
	}
	item := models.CartItem{Product: p, CartID: uuid.NewString()}

	c.mu.Lock()
	c.carts[token] = append(c.carts[token], item)
	c.mu.Unlock()

	return token, item
}

// Remove drops the item with the given cart-scoped id. Unknown ids are
// ignored; the cart belongs to the client and removing something already
// gone is not an error.
func (c *Carts) Remove(token, cartID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.carts[token]
	for i, item := range items {
		if item.CartID == cartID {
			c.carts[token] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart for token, in insertion order.
func (c *Carts) Items(token string) []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.carts[token]))
	copy(items, c.carts[token])
	return items
}

// Subtotal sums the item prices of a cart.
func Subtotal(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}

// CheckoutInfo carries the shipping destination and payment method the
// customer enters at checkout.
type CheckoutInfo struct {
	CustomerName  string               `json:"customerName"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	Zip           string               `json:"zip,omitempty"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// Checkout packages the cart into an order draft and hands it to the order
// service. On success the cart is cleared; on failure it is preserved so
// the customer can retry as-is.
func (c *Carts) Checkout(ctx context.Context, token string, info CheckoutInfo) (models.Order, error) {
	items := c.Items(token)
	if len(items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	draft := models.OrderDraft{
		CustomerName:  info.CustomerName,
		Phone:         info.Phone,
		Address:       info.Address,
		City:          info.City,
		Zip:           info.Zip,
		Items:         items,
		PaymentMethod: info.PaymentMethod,
	}

	order, err := c.orders.CreateOrder(ctx, draft)
	if err != nil {
		return models.Order{}, err
	}

	c.mu.Lock()
	delete(c.carts, token)
	c.mu.Unlock()

	return order, nil
}
