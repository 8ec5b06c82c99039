package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"thrift-rizz/models"
	"thrift-rizz/store"
)

// ErrOrderNotFound is returned when an order id matches nothing in the store.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidOrder is returned when an order draft fails validation.
var ErrInvalidOrder = errors.New("invalid order")

// Orders manages the order collection and status transitions.
type Orders struct {
	store store.Store
}

// NewOrders creates an Orders service backed by st.
func NewOrders(st store.Store) *Orders {
	return &Orders{store: st}
}

// newOrderID generates the short uppercase ids customers quote over WhatsApp.
func newOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:8])
}

// CreateOrder computes the money fields from the draft's items and payment
// method, assigns a fresh uppercase id and a pending status, prepends the
// order and persists it. The total is always subtotal plus shipping fee,
// and the fee is zero exactly when the order is prepaid.
func (o *Orders) CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	if err := validateOrderDraft(draft); err != nil {
		return models.Order{}, err
	}

	subtotal := 0
	for _, item := range draft.Items {
		subtotal += item.Price
	}
	fee := models.ShippingFee(draft.PaymentMethod)

	order := models.Order{
		ID:            newOrderID(),
		CustomerName:  draft.CustomerName,
		Phone:         draft.Phone,
		Address:       draft.Address,
		City:          draft.City,
		Zip:           draft.Zip,
		Items:         draft.Items,
		TotalAmount:   subtotal + fee,
		ShippingFee:   fee,
		Status:        models.StatusPending,
		PaymentMethod: draft.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	var orders []models.Order
	if err := o.store.Read(ctx, store.OrdersCollection, &orders); err != nil {
		return models.Order{}, err
	}
	orders = append([]models.Order{order}, orders...)
	if err := o.store.Write(ctx, store.OrdersCollection, orders); err != nil {
		return models.Order{}, fmt.Errorf("persisting order: %w", err)
	}
	return order, nil
}

// ListOrders returns every order, newest first.
func (o *Orders) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := o.store.Read(ctx, store.OrdersCollection, &orders); err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateOrderStatus overwrites the status of the matching order and persists
// the collection. Unknown ids return ErrOrderNotFound. Transitions are not
// guarded beyond the status being a known value.
func (o *Orders) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, status)
	}

	var orders []models.Order
	if err := o.store.Read(ctx, store.OrdersCollection, &orders); err != nil {
		return models.Order{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := o.store.Write(ctx, store.OrdersCollection, orders); err != nil {
				return models.Order{}, fmt.Errorf("persisting order status: %w", err)
			}
			return orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func validateOrderDraft(draft models.OrderDraft) error {
	if draft.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	}
	if draft.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidOrder)
	}
	if draft.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidOrder)
	}
	if draft.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidOrder)
	}
	if len(draft.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	if !draft.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, draft.PaymentMethod)
	}
	return nil
}
