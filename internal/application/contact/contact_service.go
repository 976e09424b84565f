// Package contact implements the contact registry use cases: the
// phone-first login flow where a customer is identified by phone number
// alone and names are optional profile data.
package contact

import (
	"context"
	"time"

	"github.com/fooddelivery/backend/internal/domain/contact"
	"github.com/fooddelivery/backend/internal/domain/shared"
)

// Service handles contact registry operations
type Service struct {
	repo contact.Repository
	now  func() time.Time
}

// NewService creates a new contact service
func NewService(repo contact.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CheckExists reports whether a phone number is already registered
func (s *Service) CheckExists(ctx context.Context, phone string) (bool, error) {
	if err := contact.ValidatePhone(phone); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, phone)
}

// Upsert creates a contact or refreshes an existing one. The stored
// names are replaced by the request values, createdAt is set once and
// lastLogin always moves to now. The second return value reports
// whether the contact was created by this call.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*contact.Contact, bool, error) {
	if err := contact.ValidatePhone(req.PhoneNumber); err != nil {
		return nil, false, err
	}

	now := s.now()

	existing, err := s.repo.Find(ctx, req.PhoneNumber)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		created, err := contact.NewContact(req.PhoneNumber, req.FirstName, req.LastName, now)
		if err != nil {
			return nil, false, err
		}
		if err := s.repo.Save(ctx, created); err != nil {
			return nil, false, err
		}
		return created, true, nil
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.TouchLogin(now)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Login refreshes the last login timestamp of a known contact
func (s *Service) Login(ctx context.Context, phone string) (*contact.Contact, error) {
	if err := contact.ValidatePhone(phone); err != nil {
		return nil, err
	}

	c, err := s.repo.Find(ctx, phone)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Contact not found")
	}

	c.TouchLogin(s.now())
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns one contact by phone number
func (s *Service) Get(ctx context.Context, phone string) (*contact.Contact, error) {
	c, err := s.repo.Find(ctx, phone)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Contact not found")
	}
	return c, nil
}

// ListAll returns every registered contact
func (s *Service) ListAll(ctx context.Context) ([]*contact.Contact, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial name update. Nil and empty fields keep
// their stored value.
func (s *Service) Update(ctx context.Context, phone string, req UpdateRequest) (*contact.Contact, error) {
	c, err := s.repo.Find(ctx, phone)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Contact not found")
	}

	c.UpdateNames(req.FirstName, req.LastName)
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a contact from the registry
func (s *Service) Delete(ctx context.Context, phone string) error {
	return s.repo.Delete(ctx, phone)
}
