package store

import (
	"sync"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
)

// SequenceStore owns the sequence collection. Status transitions are not
// guarded here: the store accepts any transition request, including leaving
// stopped. Treating stopped as terminal is a caller convention.
type SequenceStore struct {
	mu        sync.Mutex
	sequences []*entity.EmailSequence
}

func NewSequenceStore() *SequenceStore {
	return &SequenceStore{}
}

func (s *SequenceStore) Add(name string, emailCount, leadsInSequence int) *entity.EmailSequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := entity.NewEmailSequence(name, emailCount, leadsInSequence)
	s.sequences = append(s.sequences, seq)

	out := *seq
	return &out
}

func (s *SequenceStore) SetStatus(id string, status entity.SequenceStatus) (*entity.EmailSequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seq := range s.sequences {
		if seq.ID == id {
			seq.Status = status
			out := *seq
			return &out, nil
		}
	}
	return nil, entity.ErrSequenceNotFound
}

func (s *SequenceStore) Get(id string) (*entity.EmailSequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seq := range s.sequences {
		if seq.ID == id {
			out := *seq
			return &out, nil
		}
	}
	return nil, entity.ErrSequenceNotFound
}

func (s *SequenceStore) List() []entity.EmailSequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.EmailSequence, 0, len(s.sequences))
	for _, seq := range s.sequences {
		out = append(out, *seq)
	}
	return out
}
