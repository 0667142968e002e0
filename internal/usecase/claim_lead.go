package usecase

import (
	"fmt"
	"strings"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/middleware"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
)

// ClaimLeadUseCase claims a lead and records the activity as one unit: the
// activity entry is written only after the claim succeeded, and a failed
// claim leaves both stores untouched.
type ClaimLeadUseCase struct {
	Leads      LeadStoreInterface
	Activities ActivityRecorder
	Notifier   notify.Notifier
}

func NewClaimLeadUseCase(leads LeadStoreInterface, activities ActivityRecorder, notifier notify.Notifier) *ClaimLeadUseCase {
	return &ClaimLeadUseCase{
		Leads:      leads,
		Activities: activities,
		Notifier:   notifier,
	}
}

func (uc *ClaimLeadUseCase) Execute(input ClaimLeadInput) (*ClaimLeadOutput, error) {
	if strings.TrimSpace(input.UserName) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "user_name is required",
		}
	}

	lead, err := uc.Leads.Claim(input.LeadID, input.UserName)
	if err != nil {
		return nil, err
	}

	activity := uc.Activities.Record(entity.ActivityInput{
		Action:   entity.ActivityClaimed,
		UserName: input.UserName,
		LeadName: lead.Name,
	})

	middleware.RecordLeadClaimed()

	uc.Notifier.Notify(notify.Notification{
		Title:       "Lead claimed",
		Description: fmt.Sprintf("%s has been claimed by %s.", lead.Name, input.UserName),
		Severity:    notify.SeverityInfo,
	})

	return &ClaimLeadOutput{Lead: lead, Activity: activity}, nil
}
