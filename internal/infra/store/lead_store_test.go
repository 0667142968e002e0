package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
)

func TestLeadStoreAddAssignsIDAndAppends(t *testing.T) {
	s := NewLeadStore()

	first := s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com", Phone: "555", Status: entity.LeadStatusActive})
	second := s.Add(entity.LeadInput{Name: "Bob", Email: "b@x.com", Phone: "556", Status: entity.LeadStatusActive})

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	leads := s.List()
	require.Len(t, leads, 2)
	assert.Equal(t, "Ann", leads[0].Name)
	assert.Equal(t, "Bob", leads[1].Name)
}

func TestLeadStoreAddDefaultsStatusToActive(t *testing.T) {
	s := NewLeadStore()

	lead := s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com"})

	assert.Equal(t, entity.LeadStatusActive, lead.Status)
}

func TestLeadStoreUpdateReplacesAllFieldsExceptID(t *testing.T) {
	s := NewLeadStore()
	lead := s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com", Phone: "555", Status: entity.LeadStatusActive})

	updated, err := s.Update(lead.ID, entity.LeadInput{
		Name:   "Ann Lee",
		Email:  "ann.lee@x.com",
		Phone:  "777",
		Status: entity.LeadStatusReplied,
		Owner:  "Bob",
	})

	require.NoError(t, err)
	assert.Equal(t, lead.ID, updated.ID)
	assert.Equal(t, "Ann Lee", updated.Name)
	assert.Equal(t, "ann.lee@x.com", updated.Email)
	assert.Equal(t, "777", updated.Phone)
	assert.Equal(t, entity.LeadStatusReplied, updated.Status)
	assert.Equal(t, "Bob", updated.Owner)
}

func TestLeadStoreUpdateUnknownID(t *testing.T) {
	s := NewLeadStore()

	_, err := s.Update("nope", entity.LeadInput{Name: "X"})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadStoreRemoveIsNotIdempotent(t *testing.T) {
	s := NewLeadStore()
	lead := s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com"})

	require.NoError(t, s.Remove(lead.ID))
	assert.ErrorIs(t, s.Remove(lead.ID), entity.ErrLeadNotFound)
	assert.Empty(t, s.List())
}

func TestLeadStoreClaimSetsOwnerAndStatus(t *testing.T) {
	s := NewLeadStore()
	lead := s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com", Status: entity.LeadStatusActive})

	claimed, err := s.Claim(lead.ID, "Bob")

	require.NoError(t, err)
	assert.Equal(t, "Bob", claimed.Owner)
	assert.Equal(t, entity.LeadStatusClaimed, claimed.Status)
}

func TestLeadStoreClaimUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := NewLeadStore()
	s.Add(entity.LeadInput{Name: "Ann", Email: "a@x.com", Status: entity.LeadStatusActive})
	before := s.List()

	_, err := s.Claim("nope", "Bob")

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	assert.Equal(t, before, s.List())
}

// Replaying add/update/remove must land on the same end state as building it
// directly, with no hidden aliasing between reads and the backing slice.
func TestLeadStoreReplayEqualsDirectConstruction(t *testing.T) {
	s := NewLeadStore()

	a := s.Add(entity.LeadInput{Name: "A", Email: "a@x.com"})
	b := s.Add(entity.LeadInput{Name: "B", Email: "b@x.com"})
	_ = s.Add(entity.LeadInput{Name: "C", Email: "c@x.com"})

	_, err := s.Update(b.ID, entity.LeadInput{Name: "B2", Email: "b2@x.com", Status: entity.LeadStatusEmailSent})
	require.NoError(t, err)
	require.NoError(t, s.Remove(a.ID))

	leads := s.List()
	require.Len(t, leads, 2)
	assert.Equal(t, "B2", leads[0].Name)
	assert.Equal(t, entity.LeadStatusEmailSent, leads[0].Status)
	assert.Equal(t, "C", leads[1].Name)

	// Mutating the returned slice must not leak back into the store.
	leads[0].Name = "hacked"
	fresh, err := s.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "B2", fresh.Name)
}
