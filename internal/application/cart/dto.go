package cart

import "github.com/shopspring/decimal"

// AddItemRequest carries a cart add. Price and quantity are pointers
// where a zero value is meaningful but an absent field is an error.
type AddItemRequest struct {
	Phone     string           `json:"phone" binding:"required"`
	ShopID    int64            `json:"shopId" binding:"required"`
	ProductID int64            `json:"productId" binding:"required"`
	Price     *decimal.Decimal `json:"price" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required"`
}

// UpdateQuantityRequest carries a quantity change. CartID is accepted
// for wire compatibility but the lookup runs on ProductID alone.
// Quantity zero and below removes the line.
type UpdateQuantityRequest struct {
	CartID    *int64 `json:"cartId" binding:"required"`
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}
