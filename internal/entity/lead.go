package entity

import (
	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusActive        LeadStatus = "active"
	LeadStatusEmailSent     LeadStatus = "email_sent"
	LeadStatusAwaitingReply LeadStatus = "awaiting_reply"
	LeadStatusReplied       LeadStatus = "replied"
	LeadStatusClaimed       LeadStatus = "claimed"
)

// Lead is a prospective contact tracked through the claim/outreach lifecycle.
// Owner is set by the claim workflow; editing can change status while the
// owner sticks around.
type Lead struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Status LeadStatus `json:"status"`
	Owner  string     `json:"owner,omitempty"`
}

// LeadInput carries every mutable field of a Lead (everything except ID).
type LeadInput struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Status LeadStatus `json:"status"`
	Owner  string     `json:"owner,omitempty"`
}

// Factory
func NewLead(input LeadInput) *Lead {
	status := input.Status
	if status == "" {
		status = LeadStatusActive
	}

	return &Lead{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Status: status,
		Owner:  input.Owner,
	}
}
