package models

// CartItem is a product snapshot held in a cart. CartID distinguishes
// two additions of the same product within one cart.
type CartItem struct {
	Product
	CartID string `json:"cartId"`
}
