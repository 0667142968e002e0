package usecase

import (
	"fmt"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
)

// SetSequenceStatusUseCase applies start/pause/stop transitions. Stopping a
// sequence also cancels its not-yet-fired scheduled steps.
type SetSequenceStatusUseCase struct {
	Sequences SequenceStoreInterface
	Scheduler SchedulerInterface
	Notifier  notify.Notifier
}

func NewSetSequenceStatusUseCase(sequences SequenceStoreInterface, scheduler SchedulerInterface, notifier notify.Notifier) *SetSequenceStatusUseCase {
	return &SetSequenceStatusUseCase{
		Sequences: sequences,
		Scheduler: scheduler,
		Notifier:  notifier,
	}
}

func (uc *SetSequenceStatusUseCase) Execute(id string, status entity.SequenceStatus) (*entity.EmailSequence, error) {
	seq, err := uc.Sequences.SetStatus(id, status)
	if err != nil {
		return nil, err
	}

	switch status {
	case entity.SequenceStatusActive:
		uc.Notifier.Notify(notify.Notification{
			Title:       "Sequence started",
			Description: fmt.Sprintf("%s is now active.", seq.Name),
			Severity:    notify.SeverityInfo,
		})
	case entity.SequenceStatusPaused:
		uc.Notifier.Notify(notify.Notification{
			Title:       "Sequence paused",
			Description: fmt.Sprintf("%s has been paused.", seq.Name),
			Severity:    notify.SeverityInfo,
		})
	case entity.SequenceStatusStopped:
		uc.Scheduler.Cancel(seq.ID)
		uc.Notifier.Notify(notify.Notification{
			Title:       "Sequence stopped",
			Description: fmt.Sprintf("%s has been stopped.", seq.Name),
			Severity:    notify.SeverityDestructive,
		})
	}

	return seq, nil
}
