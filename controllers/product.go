package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"thrift-rizz/models"
	"thrift-rizz/services"
)

// ProductController handles catalog requests
type ProductController struct {
	Catalog *services.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(catalog *services.Catalog) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProducts retrieves the catalog, newest first
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Catalog.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product, err := pc.Catalog.GetProduct(r.Context(), params["id"])
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var draft models.ProductDraft
	err := json.NewDecoder(r.Body).Decode(&draft)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := pc.Catalog.AddProduct(r.Context(), draft)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}
