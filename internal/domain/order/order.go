package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the delivery status of an order as reported by the
// upstream order service.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAccepted   Status = "ACCEPTED"
	StatusPreparing  Status = "PREPARING"
	StatusReady      Status = "READY"
	StatusDelivering Status = "DELIVERING"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// IsTerminal reports whether the order can no longer change status.
// Terminal orders are excluded from status tracking.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReady,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is the read model returned by the upstream order service
type Order struct {
	ID              int64           `json:"id"`
	PhoneNumber     string          `json:"phoneNumber"`
	ShopID          int64           `json:"shopId"`
	Status          Status          `json:"status"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Item is one product line of an order
type Item struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// WithItems is the wire shape of GET /api/orders/by-phone: one order
// together with its items.
type WithItems struct {
	Order Order  `json:"order"`
	Items []Item `json:"items"`
}
