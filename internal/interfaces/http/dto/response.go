// Package dto holds the wire types of the HTTP API. The response
// shapes are fixed by the mobile and web clients already in the field,
// so fields and casing here must not change.
package dto

import (
	"github.com/fooddelivery/backend/internal/domain/cart"
	"github.com/fooddelivery/backend/internal/domain/contact"
)

// ErrorResponse is the common error payload. The optional context
// fields echo back the identifier the request failed on.
type ErrorResponse struct {
	Error       string   `json:"error"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	ShopID      int64    `json:"shopId,omitempty"`
	ProductID   int64    `json:"productId,omitempty"`
	Required    []string `json:"required,omitempty"`
}

// CheckContactResponse answers a phone number existence check
type CheckContactResponse struct {
	IsNewContact bool   `json:"isNewContact"`
	PhoneNumber  string `json:"phoneNumber"`
}

// SaveContactResponse answers a contact upsert
type SaveContactResponse struct {
	Success bool             `json:"success"`
	IsNew   bool             `json:"isNew"`
	Contact *contact.Contact `json:"contact"`
}

// ContactResponse answers a login or a contact update
type ContactResponse struct {
	Success bool             `json:"success"`
	Contact *contact.Contact `json:"contact"`
}

// ContactListResponse answers the admin contact listing
type ContactListResponse struct {
	Total    int                `json:"total"`
	Contacts []*contact.Contact `json:"contacts"`
}

// DeleteContactResponse answers a contact deletion
type DeleteContactResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
}

// AddToCartResponse answers a cart add with the affected line and the
// full cart
type AddToCartResponse struct {
	Success bool       `json:"success"`
	Item    *cart.Line `json:"item"`
	Cart    *cart.Cart `json:"cart"`
}

// UpdateCartResponse answers a quantity update
type UpdateCartResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Item    *cart.Line `json:"item,omitempty"`
	Cart    *cart.Cart `json:"cart,omitempty"`
}

// RemoveFromCartResponse answers a quantity update that removed the
// line (quantity zero and below)
type RemoveFromCartResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

// SimpleResponse answers deletions and cart clears
type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CartListResponse answers the admin cart listing
type CartListResponse struct {
	Total int          `json:"total"`
	Carts []*cart.Cart `json:"carts"`
}
