// Package memstore provides in-memory repository implementations.
//
// The stores are suitable for a single-process deployment only: state is
// lost on restart and is not shared across instances. All maps are
// guarded by RWMutexes so the stores stay correct under Go's concurrent
// HTTP handlers.
package memstore

import (
	"context"
	"sync"

	"github.com/fooddelivery/backend/internal/domain/contact"
	"github.com/fooddelivery/backend/internal/domain/shared"
)

// ContactStore is an in-memory contact.Repository keyed by phone number
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string]*contact.Contact
}

// NewContactStore creates an empty contact store
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[string]*contact.Contact),
	}
}

// Find returns the contact for the given phone, or nil if absent
func (s *ContactStore) Find(ctx context.Context, phone string) (*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contacts[phone], nil
}

// Exists reports whether a contact with the given phone is registered
func (s *ContactStore) Exists(ctx context.Context, phone string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.contacts[phone]
	return ok, nil
}

// Save inserts or replaces the contact keyed by its phone number
func (s *ContactStore) Save(ctx context.Context, c *contact.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts[c.PhoneNumber] = c
	return nil
}

// FindAll returns an unordered snapshot of all contacts
func (s *ContactStore) FindAll(ctx context.Context) ([]*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*contact.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		all = append(all, c)
	}
	return all, nil
}

// Delete removes the contact; shared.ErrNotFound if absent
func (s *ContactStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[phone]; !ok {
		return shared.ErrNotFound
	}
	delete(s.contacts, phone)
	return nil
}
