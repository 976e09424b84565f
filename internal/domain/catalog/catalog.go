package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fooddelivery/backend/internal/domain/shared"
)

// Shop is a restaurant listed in the marketplace
type Shop struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Address               string  `json:"address,omitempty"`
	Description           string  `json:"description"`
	Image                 string  `json:"image"`
	Rating                float64 `json:"rating,omitempty"`
	EstimatedDeliveryTime string  `json:"estimatedDeliveryTime"`
	HasPromo              bool    `json:"hasPromo"`
}

// Category groups products within a shop's menu
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is one dish on a shop's menu. The nested shop and category are
// denormalized into the payload the way the upstream catalog serves them.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Weight      int             `json:"weight"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"imageUrl"`
	PrepareTime int             `json:"prepareTime"`
	Shop        *ShopSummary    `json:"shop,omitempty"`
	Category    *Category       `json:"category,omitempty"`
}

// ShopSummary is the shop block embedded inside a product payload
type ShopSummary struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Address               string `json:"address"`
	Description           string `json:"description"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime"`
	Image                 string `json:"image"`
}

// Lookup failures, distinguished so the API can echo the right
// identifier back to the client
var (
	ErrShopNotFound    = shared.NewDomainError("NOT_FOUND", "Shop not found")
	ErrProductNotFound = shared.NewDomainError("NOT_FOUND", "Product not found")
)

// Repository exposes read access to the catalog. The catalog is a static
// data source; there are no write operations.
type Repository interface {
	// Shops returns the marketplace shop list
	Shops(ctx context.Context) ([]*Shop, error)

	// ShopProducts returns every product of one shop;
	// ErrShopNotFound if the shop is unknown.
	ShopProducts(ctx context.Context, shopID int64) ([]*Product, error)

	// Product returns one product of one shop; ErrShopNotFound or
	// ErrProductNotFound if either is unknown.
	Product(ctx context.Context, shopID, productID int64) (*Product, error)
}
