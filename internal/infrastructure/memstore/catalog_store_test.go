package memstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fooddelivery/backend/internal/domain/shared"
)

func TestCatalogStore_Shops(t *testing.T) {
	store := NewCatalogStore()

	shops, err := store.Shops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 3)
	assert.Equal(t, int64(1), shops[0].ID)
	assert.Equal(t, int64(3), shops[2].ID)
	assert.Equal(t, "Milliy Ovqat", shops[2].Name)
}

func TestCatalogStore_ShopProducts(t *testing.T) {
	store := NewCatalogStore()

	products, err := store.ShopProducts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	products, err = store.ShopProducts(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogStore_ShopProductsUnknownShop(t *testing.T) {
	store := NewCatalogStore()

	_, err := store.ShopProducts(context.Background(), 99)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCatalogStore_Product(t *testing.T) {
	store := NewCatalogStore()

	p, err := store.Product(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.Equal(t, "Margarita Pizza", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(35000)))
	require.NotNil(t, p.Shop)
	assert.Equal(t, int64(1), p.Shop.ID)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Pizza", p.Category.Name)
}

func TestCatalogStore_ProductUnknown(t *testing.T) {
	store := NewCatalogStore()

	_, err := store.Product(context.Background(), 1, 999)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
