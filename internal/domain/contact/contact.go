package contact

import (
	"time"

	"github.com/fooddelivery/backend/internal/domain/shared"
)

// Contact represents a customer profile keyed by phone number.
// It is created on the first save and mutated in place afterwards.
type Contact struct {
	PhoneNumber string    `json:"phoneNumber"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLogin   time.Time `json:"lastLogin"`
}

// NewContact creates a contact with createdAt and lastLogin set to now.
// CreatedAt is immutable after this point.
func NewContact(phone string, firstName, lastName *string, now time.Time) (*Contact, error) {
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	return &Contact{
		PhoneNumber: phone,
		FirstName:   firstName,
		LastName:    lastName,
		CreatedAt:   now,
		LastLogin:   now,
	}, nil
}

// TouchLogin refreshes the last login timestamp
func (c *Contact) TouchLogin(now time.Time) {
	c.LastLogin = now
}

// UpdateNames applies a partial name update; nil and empty fields keep
// their stored value
func (c *Contact) UpdateNames(firstName, lastName *string) {
	if firstName != nil && *firstName != "" {
		c.FirstName = firstName
	}
	if lastName != nil && *lastName != "" {
		c.LastName = lastName
	}
}

// ValidatePhone checks that a phone number is present. Format is not
// enforced: the upstream clients send numbers in several shapes and the
// registry treats the string as an opaque key.
func ValidatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_INPUT", "Phone number required")
	}
	return nil
}
