package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type SequenceStatus string

const (
	SequenceStatusActive  SequenceStatus = "active"
	SequenceStatusPaused  SequenceStatus = "paused"
	SequenceStatusStopped SequenceStatus = "stopped"
)

// MaxSequenceSteps caps how many emails a single drip sequence can carry.
const MaxSequenceSteps = 4

// EmailSequence is a drip campaign targeting a single recipient.
type EmailSequence struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	EmailCount      int            `json:"email_count"`
	Status          SequenceStatus `json:"status"`
	LeadsInSequence int            `json:"leads_in_sequence"`
}

// EmailStep is one email within a sequence. DelayDays is the declared spacing
// after the previous step (ignored for step 0); the dispatcher currently runs
// on a fixed unit interval instead, see worker.SequenceScheduler.
type EmailStep struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	DelayDays int    `json:"delay_days"`
}

func NewEmailSequence(name string, emailCount, leadsInSequence int) *EmailSequence {
	return &EmailSequence{
		ID:              uuid.New().String(),
		Name:            name,
		EmailCount:      emailCount,
		Status:          SequenceStatusActive,
		LeadsInSequence: leadsInSequence,
	}
}

// ValidateSteps checks the 1..MaxSequenceSteps bound on a builder payload.
func ValidateSteps(steps []EmailStep) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	if len(steps) > MaxSequenceSteps {
		return fmt.Errorf("%w: got %d", ErrTooManySteps, len(steps))
	}
	return nil
}
