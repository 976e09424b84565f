package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fooddelivery/backend/internal/domain/shared"
)

// Key identifies one customer's cart at one shop
type Key struct {
	Phone  string
	ShopID int64
}

// Line is a single product entry inside a cart. Line IDs are unique
// across the whole store; ProductID is unique within its cart.
type Line struct {
	ID        int64           `json:"id"`
	CartID    int64           `json:"cartId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cart owns an ordered collection of lines for one (phone, shop) key.
// It is created lazily on the first add.
type Cart struct {
	Phone     string    `json:"phone"`
	ShopID    int64     `json:"shopId"`
	Items     []*Line   `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCart creates an empty cart for the given key
func NewCart(key Key, now time.Time) *Cart {
	return &Cart{
		Phone:     key.Phone,
		ShopID:    key.ShopID,
		Items:     make([]*Line, 0),
		CreatedAt: now,
	}
}

// Key returns the composite key of this cart
func (c *Cart) Key() Key {
	return Key{Phone: c.Phone, ShopID: c.ShopID}
}

// FindLine returns the line for the given product, or nil
func (c *Cart) FindLine(productID int64) *Line {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

// AddLine merges the quantity into an existing line for the same product,
// or appends a new line with the given id. It returns the affected line.
// The price of an existing line is kept; duplicate adds only accumulate
// quantity.
func (c *Cart) AddLine(lineID, productID int64, price decimal.Decimal, quantity int) (*Line, error) {
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}

	if existing := c.FindLine(productID); existing != nil {
		existing.Quantity += quantity
		return existing, nil
	}

	line := &Line{
		ID:        lineID,
		CartID:    1, // static cart id, kept for wire compatibility
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	c.Items = append(c.Items, line)
	return line, nil
}

// RemoveLineByProduct drops the line for the given product.
// Reports whether a line was removed.
func (c *Cart) RemoveLineByProduct(productID int64) bool {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLineByID drops the line with the given id.
// Reports whether a line was removed.
func (c *Cart) RemoveLineByID(lineID int64) bool {
	for i, item := range c.Items {
		if item.ID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
