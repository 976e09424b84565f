// Package cart implements the shopping cart use cases on top of the
// cart repository. Carts are keyed by (phone, shopId) and lines merge
// on duplicate product.
package cart

import (
	"context"

	"github.com/fooddelivery/backend/internal/domain/cart"
)

// Service handles cart operations
type Service struct {
	repo cart.Repository
}

// NewService creates a new cart service
func NewService(repo cart.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the lines of one cart. An absent or empty cart yields an
// empty slice, never nil.
func (s *Service) Get(ctx context.Context, phone string, shopID int64) ([]*cart.Line, error) {
	c, err := s.repo.Find(ctx, cart.Key{Phone: phone, ShopID: shopID})
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Items) == 0 {
		return []*cart.Line{}, nil
	}
	return c.Items, nil
}

// AddItem adds a product to a cart, creating the cart on first use.
// Adding a product already in the cart accumulates its quantity and
// keeps the stored price. Returns the affected line and the full cart.
func (s *Service) AddItem(ctx context.Context, req AddItemRequest) (*cart.Line, *cart.Cart, error) {
	key := cart.Key{Phone: req.Phone, ShopID: req.ShopID}
	return s.repo.AddLine(ctx, key, req.ProductID, *req.Price, req.Quantity)
}

// UpdateQuantity sets the quantity of the first line matching the
// product across all carts. Quantity zero and below removes the line;
// the third return value reports a removal.
func (s *Service) UpdateQuantity(ctx context.Context, req UpdateQuantityRequest) (*cart.Line, *cart.Cart, bool, error) {
	return s.repo.UpdateQuantity(ctx, req.ProductID, *req.Quantity)
}

// DeleteItem removes one line by its ID, scanning all carts
func (s *Service) DeleteItem(ctx context.Context, itemID int64) error {
	return s.repo.DeleteLine(ctx, itemID)
}

// Clear removes a whole cart. Clearing an absent cart is a no-op.
func (s *Service) Clear(ctx context.Context, phone string, shopID int64) error {
	return s.repo.Clear(ctx, cart.Key{Phone: phone, ShopID: shopID})
}

// ListAll returns a snapshot of every cart
func (s *Service) ListAll(ctx context.Context) ([]*cart.Cart, error) {
	return s.repo.FindAll(ctx)
}
