package usecase

import (
	"fmt"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/middleware"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
)

// CreateSequenceUseCase turns a finished builder session into a stored
// sequence and hands its steps to the scheduler. The store record exists only
// when scheduling was accepted; a missing recipient aborts everything.
type CreateSequenceUseCase struct {
	Sequences SequenceStoreInterface
	Scheduler SchedulerInterface
	Notifier  notify.Notifier
}

func NewCreateSequenceUseCase(sequences SequenceStoreInterface, scheduler SchedulerInterface, notifier notify.Notifier) *CreateSequenceUseCase {
	return &CreateSequenceUseCase{
		Sequences: sequences,
		Scheduler: scheduler,
		Notifier:  notifier,
	}
}

func (uc *CreateSequenceUseCase) Execute(input CreateSequenceInput) (*entity.EmailSequence, error) {
	if input.Recipient == "" {
		uc.Notifier.Notify(notify.Notification{
			Title:       "Missing recipient",
			Description: "Please enter a lead email to schedule the sequence.",
			Severity:    notify.SeverityDestructive,
		})
		return nil, entity.ErrMissingRecipient
	}

	if err := entity.ValidateSteps(input.Steps); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("Sequence for %s", input.Recipient)
	seq := uc.Sequences.Add(name, len(input.Steps), 1)

	if _, err := uc.Scheduler.Schedule(seq.ID, input.Recipient, input.Steps); err != nil {
		return nil, err
	}

	middleware.RecordSequenceScheduled()

	uc.Notifier.Notify(notify.Notification{
		Title:       "Sequence scheduled",
		Description: fmt.Sprintf("%s scheduled for %s. Check activity for send status.", seq.Name, input.Recipient),
		Severity:    notify.SeverityInfo,
	})

	return seq, nil
}
