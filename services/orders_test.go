package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thrift-rizz/models"
	"thrift-rizz/store"
)

func cartItems(prices ...int) []models.CartItem {
	items := make([]models.CartItem, 0, len(prices))
	for i, price := range prices {
		items = append(items, models.CartItem{
			Product: models.Product{
				ID:    string(rune('a' + i)),
				Name:  "Vintage Nike Windbreaker",
				Price: price,
			},
			CartID: string(rune('A' + i)),
		})
	}
	return items
}

func orderDraft(method models.PaymentMethod, prices ...int) models.OrderDraft {
	return models.OrderDraft{
		CustomerName:  "Ahsan K.",
		Phone:         "03001234567",
		Address:       "House 12, Street 4",
		City:          "Karachi",
		Items:         cartItems(prices...),
		PaymentMethod: method,
	}
}

func TestCreateOrderCOD(t *testing.T) {
	orders := NewOrders(newTestStore(t))

	order, err := orders.CreateOrder(context.Background(), orderDraft(models.PaymentCOD, 4500, 4500))
	require.NoError(t, err)

	require.Equal(t, models.FlatShippingFee, order.ShippingFee)
	require.Equal(t, 9300, order.TotalAmount)
	require.Equal(t, models.StatusPending, order.Status)
	require.NotEmpty(t, order.ID)
	require.Equal(t, strings.ToUpper(order.ID), order.ID)
	require.False(t, order.CreatedAt.After(time.Now()))
}

func TestCreateOrderPrepaid(t *testing.T) {
	orders := NewOrders(newTestStore(t))

	order, err := orders.CreateOrder(context.Background(), orderDraft(models.PaymentPrepaid, 4500, 4500))
	require.NoError(t, err)

	require.Zero(t, order.ShippingFee)
	require.Equal(t, 9000, order.TotalAmount)
}

func TestCreateOrderInvariant(t *testing.T) {
	orders := NewOrders(newTestStore(t))

	for _, method := range []models.PaymentMethod{models.PaymentCOD, models.PaymentPrepaid} {
		order, err := orders.CreateOrder(context.Background(), orderDraft(method, 3200, 5500, 4500))
		require.NoError(t, err)

		subtotal := 0
		for _, item := range order.Items {
			subtotal += item.Price
		}
		require.Equal(t, subtotal+order.ShippingFee, order.TotalAmount)
		require.Equal(t, method == models.PaymentPrepaid, order.ShippingFee == 0)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	orders := NewOrders(newTestStore(t))
	ctx := context.Background()

	empty := orderDraft(models.PaymentCOD)
	_, err := orders.CreateOrder(ctx, empty)
	require.ErrorIs(t, err, ErrInvalidOrder)

	noPhone := orderDraft(models.PaymentCOD, 4500)
	noPhone.Phone = ""
	_, err = orders.CreateOrder(ctx, noPhone)
	require.ErrorIs(t, err, ErrInvalidOrder)

	badMethod := orderDraft("PayPal", 4500)
	_, err = orders.CreateOrder(ctx, badMethod)
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestListOrdersNewestFirst(t *testing.T) {
	st := newTestStore(t)
	orders := NewOrders(st)
	ctx := context.Background()

	now := time.Now().UTC()
	shuffled := []models.Order{
		{ID: "MIDDLE", CreatedAt: now.Add(-time.Hour)},
		{ID: "OLDEST", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "NEWEST", CreatedAt: now},
	}
	require.NoError(t, st.Write(ctx, store.OrdersCollection, shuffled))

	listed, err := orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "NEWEST", listed[0].ID)
	require.Equal(t, "MIDDLE", listed[1].ID)
	require.Equal(t, "OLDEST", listed[2].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	orders := NewOrders(newTestStore(t))
	ctx := context.Background()

	first, err := orders.CreateOrder(ctx, orderDraft(models.PaymentCOD, 4500))
	require.NoError(t, err)
	second, err := orders.CreateOrder(ctx, orderDraft(models.PaymentPrepaid, 3200))
	require.NoError(t, err)

	updated, err := orders.UpdateOrderStatus(ctx, first.ID, models.StatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.StatusShipped, updated.Status)

	// Only the status of the matched order changes.
	listed, err := orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, order := range listed {
		switch order.ID {
		case first.ID:
			expect := first
			expect.Status = models.StatusShipped
			require.Equal(t, expect, order)
		case second.ID:
			require.Equal(t, second, order)
		default:
			t.Fatalf("unexpected order %s", order.ID)
		}
	}
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	orders := NewOrders(newTestStore(t))
	ctx := context.Background()

	created, err := orders.CreateOrder(ctx, orderDraft(models.PaymentCOD, 4500))
	require.NoError(t, err)

	_, err = orders.UpdateOrderStatus(ctx, "NOPE1234", models.StatusDelivered)
	require.ErrorIs(t, err, ErrOrderNotFound)

	listed, err := orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])
}

func TestUpdateOrderStatusUnknownValue(t *testing.T) {
	orders := NewOrders(newTestStore(t))
	ctx := context.Background()

	created, err := orders.CreateOrder(ctx, orderDraft(models.PaymentCOD, 4500))
	require.NoError(t, err)

	_, err = orders.UpdateOrderStatus(ctx, created.ID, "returned")
	require.ErrorIs(t, err, ErrInvalidOrder)
}
