package store

import (
	"sync"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
)

// ActivityStore is the append-only activity feed. New entries are prepended
// so List reads most-recent-first. Nothing ever removes an entry.
type ActivityStore struct {
	mu      sync.Mutex
	entries []*entity.Activity
}

func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

func (s *ActivityStore) Record(input entity.ActivityInput) *entity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := entity.NewActivity(input)
	s.entries = append([]*entity.Activity{activity}, s.entries...)

	out := *activity
	return &out
}

func (s *ActivityStore) List() []entity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Activity, 0, len(s.entries))
	for _, a := range s.entries {
		out = append(out, *a)
	}
	return out
}
