package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"thrift-rizz/models"
	"thrift-rizz/store"
)

// ErrProductNotFound is returned when a product id matches nothing in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidProduct is returned when a product draft fails validation.
var ErrInvalidProduct = errors.New("invalid product")

// Catalog manages the product collection. Products are immutable once
// created; there is no update or delete.
type Catalog struct {
	store store.Store
}

// NewCatalog creates a Catalog backed by st.
func NewCatalog(st store.Store) *Catalog {
	return &Catalog{store: st}
}

// ListProducts returns every product, newest first.
func (c *Catalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.store.Read(ctx, store.ProductsCollection, &products); err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

// GetProduct returns the product with the given id.
func (c *Catalog) GetProduct(ctx context.Context, id string) (models.Product, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AddProduct assigns a fresh id, the current timestamp and a stock of one,
// prepends the product to the collection and persists it.
func (c *Catalog) AddProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	if err := validateProductDraft(draft); err != nil {
		return models.Product{}, err
	}

	var products []models.Product
	if err := c.store.Read(ctx, store.ProductsCollection, &products); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Category:    draft.Category,
		Size:        draft.Size,
		Images:      draft.Images,
		Stock:       1,
		CreatedAt:   time.Now().UTC(),
	}

	products = append([]models.Product{product}, products...)
	if err := c.store.Write(ctx, store.ProductsCollection, products); err != nil {
		return models.Product{}, fmt.Errorf("persisting product: %w", err)
	}
	return product, nil
}

func validateProductDraft(draft models.ProductDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if draft.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	if len(draft.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrInvalidProduct)
	}
	return nil
}

// Seed writes the demo catalog when the store is empty, so a fresh
// deployment has something on the shelf.
func (c *Catalog) Seed(ctx context.Context) error {
	var products []models.Product
	if err := c.store.Read(ctx, store.ProductsCollection, &products); err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	now := time.Now().UTC()
	seed := []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Vintage Nike Windbreaker",
			Price:       4500,
			Description: "Original 90s Nike windbreaker in excellent condition. Teal and purple colorway.",
			Category:    "Jackets",
			Size:        "L",
			Images:      []string{"https://images.unsplash.com/photo-1544022613-e87ca75a784a?q=80&w=1000&auto=format&fit=crop"},
			Stock:       1,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Levis 501 Original",
			Price:       3200,
			Description: "Classic Levis 501 jeans. Light wash, straight fit.",
			Category:    "Bottoms",
			Size:        "32/32",
			Images:      []string{"https://images.unsplash.com/photo-1542272454315-4c01d7abdf4a?q=80&w=1000&auto=format&fit=crop"},
			Stock:       1,
			CreatedAt:   now.Add(-100 * time.Second),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Ralph Lauren Polo Bear Sweater",
			Price:       5500,
			Description: "Iconic Polo Bear knit sweater. Navy blue. rare find.",
			Category:    "Shirts",
			Size:        "M",
			Images:      []string{"https://images.unsplash.com/photo-1620799140408-ed5341cd2431?q=80&w=1000&auto=format&fit=crop"},
			Stock:       1,
			CreatedAt:   now.Add(-200 * time.Second),
		},
	}
	return c.store.Write(ctx, store.ProductsCollection, seed)
}
