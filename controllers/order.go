// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"thrift-rizz/events"
	"thrift-rizz/models"
	"thrift-rizz/services"
	"thrift-rizz/utils"
)

// OrderController handles checkout and order administration
type OrderController struct {
	Orders         *services.Orders
	Carts          *services.Carts
	EmailService   *utils.EmailService
	Events         *events.Publisher
	WhatsAppNumber string
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *services.Orders, carts *services.Carts, emailService *utils.EmailService, publisher *events.Publisher) *OrderController {
	return &OrderController{
		Orders:         orders,
		Carts:          carts,
		EmailService:   emailService,
		Events:         publisher,
		WhatsAppNumber: utils.WhatsAppNumber(),
	}
}

// Checkout turns the cart into an order. On success the cart is cleared and
// the response carries the WhatsApp link the customer uses to confirm; on
// failure the cart is preserved so the customer can retry.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		http.Error(w, "Cart token missing", http.StatusBadRequest)
		return
	}

	var info services.CheckoutInfo
	err := json.NewDecoder(r.Body).Decode(&info)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := oc.Carts.Checkout(r.Context(), token, info)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			http.Error(w, "Cart is empty", http.StatusBadRequest)
		case errors.Is(err, services.ErrInvalidOrder):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "There was an error placing your order. Please try again.", http.StatusInternalServerError)
		}
		return
	}

	oc.notify(order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order":        order,
		"whatsappLink": utils.WhatsAppLink(oc.WhatsAppNumber, order),
	})
}

// notify fans the new order out to the optional channels. Failures are
// logged and never fail the order.
func (oc *OrderController) notify(order models.Order) {
	if oc.EmailService != nil {
		go func(order models.Order) {
			if err := oc.EmailService.SendOrderNotification(order); err != nil {
				log.Printf("Failed to send order notification for %s: %v", order.ID, err)
			}
		}(order)
	}
	if oc.Events.Enabled() {
		go func(order models.Order) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := oc.Events.PublishOrderCreated(ctx, order); err != nil {
				log.Printf("Failed to publish order event for %s: %v", order.ID, err)
			}
		}(order)
	}
}

// GetOrders retrieves all orders, newest first (Admin only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.ListOrders(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus overwrites an order's status (Admin only)
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := oc.Orders.UpdateOrderStatus(r.Context(), params["id"], body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidOrder):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to update order status", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}
