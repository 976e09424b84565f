package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines persistence operations for carts.
//
// UpdateQuantity and DeleteLine deliberately search across every cart in
// the store rather than scoping by (phone, shop); the first match wins.
// This mirrors the upstream contract and is flagged in DESIGN.md.
type Repository interface {
	// Find returns the cart for the given key, or nil if absent
	Find(ctx context.Context, key Key) (*Cart, error)

	// AddLine merges or appends a line in the cart for the given key,
	// creating the cart lazily. New lines receive a store-wide unique id.
	// It returns the affected line and the whole cart.
	AddLine(ctx context.Context, key Key, productID int64, price decimal.Decimal, quantity int) (*Line, *Cart, error)

	// UpdateQuantity finds the first line with the given product across
	// all carts. quantity <= 0 removes the line (removed=true); otherwise
	// the quantity is replaced. Returns shared.ErrNotFound if no cart
	// contains the product.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (line *Line, cart *Cart, removed bool, err error)

	// DeleteLine removes the line with the given id from whichever cart
	// contains it; shared.ErrNotFound if none does.
	DeleteLine(ctx context.Context, lineID int64) error

	// Clear removes the whole cart for the key; no-op if absent
	Clear(ctx context.Context, key Key) error

	// FindAll returns an unordered snapshot of all carts
	FindAll(ctx context.Context) ([]*Cart, error)
}
