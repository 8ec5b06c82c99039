// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"thrift-rizz/controllers"
	"thrift-rizz/metrics"
	"thrift-rizz/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController, sessionController *controllers.SessionController) {
	// Session routes
	router.HandleFunc("/login", sessionController.Login).Methods("POST")
	router.HandleFunc("/logout", sessionController.Logout).Methods("POST")

	// Catalog routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/items/{cartId}", cartController.RemoveFromCart).Methods("DELETE")

	// Checkout
	router.HandleFunc("/checkout", orderController.Checkout).Methods("POST")

	// Operational endpoints
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")
}
