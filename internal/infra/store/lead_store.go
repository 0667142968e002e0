package store

import (
	"sync"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
)

// LeadStore owns the lead collection. Insertion order is preserved and every
// read hands out copies, so callers never touch the backing slice.
type LeadStore struct {
	mu    sync.Mutex
	leads []*entity.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{}
}

// Add assigns a fresh id and appends. Validation is a caller concern.
func (s *LeadStore) Add(input entity.LeadInput) *entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := entity.NewLead(input)
	s.leads = append(s.leads, lead)

	out := *lead
	return &out
}

// Update replaces every field except the id.
func (s *LeadStore) Update(id string, input entity.LeadInput) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := s.find(id)
	if lead == nil {
		return nil, entity.ErrLeadNotFound
	}

	lead.Name = input.Name
	lead.Email = input.Email
	lead.Phone = input.Phone
	lead.Status = input.Status
	lead.Owner = input.Owner

	out := *lead
	return &out, nil
}

// Remove deletes the record. A second call for the same id fails again with
// ErrLeadNotFound (removal is not idempotent).
func (s *LeadStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, lead := range s.leads {
		if lead.ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return entity.ErrLeadNotFound
}

// Claim assigns the owner and flips status to claimed. On a miss the
// collection is left untouched.
func (s *LeadStore) Claim(id, owner string) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := s.find(id)
	if lead == nil {
		return nil, entity.ErrLeadNotFound
	}

	lead.Owner = owner
	lead.Status = entity.LeadStatusClaimed

	out := *lead
	return &out, nil
}

func (s *LeadStore) Get(id string) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := s.find(id)
	if lead == nil {
		return nil, entity.ErrLeadNotFound
	}

	out := *lead
	return &out, nil
}

// List returns a copy of the collection in insertion order.
func (s *LeadStore) List() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		out = append(out, *lead)
	}
	return out
}

func (s *LeadStore) find(id string) *entity.Lead {
	for _, lead := range s.leads {
		if lead.ID == id {
			return lead
		}
	}
	return nil
}
