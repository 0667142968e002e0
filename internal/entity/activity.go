package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActivityClaimed ActivityAction = "claimed"
	ActivityEmailed ActivityAction = "emailed"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// Activity is one entry of the team activity feed. LeadName is a copy taken
// at creation time, not a live link to the lead.
type Activity struct {
	ID        string         `json:"id"`
	Action    ActivityAction `json:"action"`
	UserName  string         `json:"user_name"`
	LeadName  string         `json:"lead_name"`
	Timestamp string         `json:"timestamp"`
}

type ActivityInput struct {
	Action   ActivityAction `json:"action"`
	UserName string         `json:"user_name"`
	LeadName string         `json:"lead_name"`
}

func NewActivity(input ActivityInput) *Activity {
	return &Activity{
		ID:        uuid.New().String(),
		Action:    input.Action,
		UserName:  input.UserName,
		LeadName:  input.LeadName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
