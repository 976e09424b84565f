// Package catalog exposes the mock shop and product catalog as
// read-only queries.
package catalog

import (
	"context"

	"github.com/fooddelivery/backend/internal/domain/catalog"
)

// Service handles catalog queries
type Service struct {
	repo catalog.Repository
}

// NewService creates a new catalog service
func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

// Shops returns the marketplace shop list
func (s *Service) Shops(ctx context.Context) ([]*catalog.Shop, error) {
	return s.repo.Shops(ctx)
}

// ShopProducts returns every product of one shop
func (s *Service) ShopProducts(ctx context.Context, shopID int64) ([]*catalog.Product, error) {
	return s.repo.ShopProducts(ctx, shopID)
}

// Product returns one product of one shop
func (s *Service) Product(ctx context.Context, shopID, productID int64) (*catalog.Product, error) {
	return s.repo.Product(ctx, shopID, productID)
}
