package models

import (
	"time"
)

// Product represents a single thrifted item in the catalog
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"` // rupees
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Images      []string  `json:"images"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductDraft carries the admin-supplied fields of a new product.
// ID, CreatedAt and Stock are assigned by the catalog service.
type ProductDraft struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Size        string   `json:"size"`
	Images      []string `json:"images"`
}
