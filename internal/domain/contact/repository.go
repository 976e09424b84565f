package contact

import "context"

// Repository defines persistence operations for contacts.
// Implementations are keyed by phone number.
type Repository interface {
	// Find returns the contact for the given phone, or nil if absent
	Find(ctx context.Context, phone string) (*Contact, error)

	// Exists reports whether a contact with the given phone is registered
	Exists(ctx context.Context, phone string) (bool, error)

	// Save inserts or replaces the contact keyed by its phone number
	Save(ctx context.Context, c *Contact) error

	// FindAll returns an unordered snapshot of all contacts
	FindAll(ctx context.Context) ([]*Contact, error)

	// Delete removes the contact; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, phone string) error
}
