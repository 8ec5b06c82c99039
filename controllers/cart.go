package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"thrift-rizz/models"
	"thrift-rizz/services"
)

// CartTokenHeader carries the opaque token identifying a customer's cart.
// The first add issues one; clients echo it on every cart request.
const CartTokenHeader = "X-Cart-Token"

// CartController handles cart requests
type CartController struct {
	Carts   *services.Carts
	Catalog *services.Catalog
}

// NewCartController creates a new CartController
func NewCartController(carts *services.Carts, catalog *services.Catalog) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

type cartResponse struct {
	CartToken string            `json:"cartToken"`
	Items     []models.CartItem `json:"items"`
	Subtotal  int               `json:"subtotal"`
}

func (cc *CartController) writeCart(w http.ResponseWriter, token string) {
	items := cc.Carts.Items(token)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{
		CartToken: token,
		Items:     items,
		Subtotal:  services.Subtotal(items),
	})
}

// AddToCart snapshots a product into the cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := cc.Catalog.GetProduct(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	token, _ := cc.Carts.Add(r.Header.Get(CartTokenHeader), product)
	cc.writeCart(w, token)
}

// GetCart returns the cart for the token
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.writeCart(w, r.Header.Get(CartTokenHeader))
}

// RemoveFromCart drops one item by its cart-scoped id
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		http.Error(w, "Cart token missing", http.StatusBadRequest)
		return
	}

	params := mux.Vars(r)
	cc.Carts.Remove(token, params["cartId"])
	cc.writeCart(w, token)
}
