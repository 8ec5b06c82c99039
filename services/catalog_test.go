package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thrift-rizz/models"
	"thrift-rizz/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewJSONFileStore(t.TempDir())
	require.NoError(t, err)
	return st
}

func windbreakerDraft() models.ProductDraft {
	return models.ProductDraft{
		Name:        "Vintage Nike Windbreaker",
		Price:       4500,
		Description: "Original 90s Nike windbreaker.",
		Category:    "Jackets",
		Size:        "L",
		Images:      []string{"https://example.com/windbreaker.jpg"},
	}
}

func TestAddProduct(t *testing.T) {
	catalog := NewCatalog(newTestStore(t))
	ctx := context.Background()

	product, err := catalog.AddProduct(ctx, windbreakerDraft())
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.Equal(t, 1, product.Stock)
	require.False(t, product.CreatedAt.After(time.Now()))

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, product.ID, products[0].ID)
	require.Equal(t, 1, products[0].Stock)
}

func TestAddProductValidation(t *testing.T) {
	catalog := NewCatalog(newTestStore(t))
	ctx := context.Background()

	noName := windbreakerDraft()
	noName.Name = ""
	_, err := catalog.AddProduct(ctx, noName)
	require.ErrorIs(t, err, ErrInvalidProduct)

	freebie := windbreakerDraft()
	freebie.Price = 0
	_, err = catalog.AddProduct(ctx, freebie)
	require.ErrorIs(t, err, ErrInvalidProduct)

	noImages := windbreakerDraft()
	noImages.Images = nil
	_, err = catalog.AddProduct(ctx, noImages)
	require.ErrorIs(t, err, ErrInvalidProduct)
}

func TestListProductsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	catalog := NewCatalog(st)
	ctx := context.Background()

	// Write directly so insertion order disagrees with creation time.
	now := time.Now().UTC()
	shuffled := []models.Product{
		{ID: "middle", Name: "b", Price: 1, CreatedAt: now.Add(-time.Hour)},
		{ID: "newest", Name: "a", Price: 1, CreatedAt: now},
		{ID: "oldest", Name: "c", Price: 1, CreatedAt: now.Add(-2 * time.Hour)},
	}
	require.NoError(t, st.Write(ctx, store.ProductsCollection, shuffled))

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "newest", products[0].ID)
	require.Equal(t, "middle", products[1].ID)
	require.Equal(t, "oldest", products[2].ID)
}

func TestGetProduct(t *testing.T) {
	catalog := NewCatalog(newTestStore(t))
	ctx := context.Background()

	created, err := catalog.AddProduct(ctx, windbreakerDraft())
	require.NoError(t, err)

	found, err := catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, found.Name)

	_, err = catalog.GetProduct(ctx, "nope")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestSeed(t *testing.T) {
	catalog := NewCatalog(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, catalog.Seed(ctx))
	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Seeding again must not duplicate the demo catalog.
	require.NoError(t, catalog.Seed(ctx))
	products, err = catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
}
