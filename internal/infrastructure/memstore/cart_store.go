package memstore

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fooddelivery/backend/internal/domain/cart"
	"github.com/fooddelivery/backend/internal/domain/shared"
)

// CartStore is an in-memory cart.Repository. Line IDs come from an
// atomic counter owned by the store, so they are unique across every
// cart for the lifetime of the process.
type CartStore struct {
	mu     sync.RWMutex
	carts  map[cart.Key]*cart.Cart
	lastID atomic.Int64
	now    func() time.Time
}

// CartStoreOption configures a CartStore
type CartStoreOption func(*CartStore)

// WithClock overrides the store's clock, for deterministic tests
func WithClock(now func() time.Time) CartStoreOption {
	return func(s *CartStore) {
		s.now = now
	}
}

// NewCartStore creates an empty cart store
func NewCartStore(opts ...CartStoreOption) *CartStore {
	s := &CartStore{
		carts: make(map[cart.Key]*cart.Cart),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Find returns the cart for the given key, or nil if absent
func (s *CartStore) Find(ctx context.Context, key cart.Key) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.carts[key], nil
}

// AddLine merges or appends a line in the cart for the given key,
// creating the cart lazily on the first add.
func (s *CartStore) AddLine(ctx context.Context, key cart.Key, productID int64, price decimal.Decimal, quantity int) (*cart.Line, *cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[key]
	if !ok {
		c = cart.NewCart(key, s.now())
		s.carts[key] = c
	}

	// only a fresh line consumes an id; a merge keeps the existing one
	var lineID int64
	if c.FindLine(productID) == nil {
		lineID = s.lastID.Add(1)
	}

	line, err := c.AddLine(lineID, productID, price, quantity)
	if err != nil {
		return nil, nil, err
	}
	return line, c, nil
}

// UpdateQuantity finds the first line with the given product across all
// carts; quantity <= 0 removes the line. The scan deliberately ignores
// phone/shop scoping to match the upstream contract.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) (*cart.Line, *cart.Cart, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.carts {
		line := c.FindLine(productID)
		if line == nil {
			continue
		}

		if quantity <= 0 {
			c.RemoveLineByProduct(productID)
			return nil, c, true, nil
		}

		line.Quantity = quantity
		return line, c, false, nil
	}

	return nil, nil, false, shared.NewDomainError("NOT_FOUND", "Product not found in cart")
}

// DeleteLine removes the line with the given id from whichever cart
// contains it
func (s *CartStore) DeleteLine(ctx context.Context, lineID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.carts {
		if c.RemoveLineByID(lineID) {
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Item not found")
}

// Clear removes the whole cart for the key; no-op if absent
func (s *CartStore) Clear(ctx context.Context, key cart.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, key)
	return nil
}

// FindAll returns an unordered snapshot of all carts
func (s *CartStore) FindAll(ctx context.Context) ([]*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*cart.Cart, 0, len(s.carts))
	for _, c := range s.carts {
		all = append(all, c)
	}
	return all, nil
}
